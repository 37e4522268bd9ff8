// Code generated by ent, DO NOT EDIT.

package generated

import (
	"github.com/planmaster/planmaster/ent/generated/plan"
	"github.com/planmaster/planmaster/ent/generated/plancompletion"
	"github.com/planmaster/planmaster/ent/generated/predicate"
	"github.com/planmaster/planmaster/ent/generated/sharedplan"
	"github.com/planmaster/planmaster/ent/generated/task"
	"github.com/planmaster/planmaster/ent/generated/taskcompletion"
	"github.com/planmaster/planmaster/ent/generated/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/entql"
	"entgo.io/ent/schema/field"
)

// schemaGraph holds a representation of ent/schema at runtime.
var schemaGraph = func() *sqlgraph.Schema {
	graph := &sqlgraph.Schema{Nodes: make([]*sqlgraph.Node, 6)}
	graph.Nodes[0] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   plan.Table,
			Columns: plan.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: plan.FieldID,
			},
		},
		Type: "Plan",
		Fields: map[string]*sqlgraph.FieldSpec{
			plan.FieldOwnerID:          {Type: field.TypeUUID, Column: plan.FieldOwnerID},
			plan.FieldTitle:            {Type: field.TypeString, Column: plan.FieldTitle},
			plan.FieldDescription:      {Type: field.TypeString, Column: plan.FieldDescription},
			plan.FieldDate:             {Type: field.TypeTime, Column: plan.FieldDate},
			plan.FieldCurrentTaskIndex: {Type: field.TypeInt, Column: plan.FieldCurrentTaskIndex},
			plan.FieldCompleted:        {Type: field.TypeBool, Column: plan.FieldCompleted},
			plan.FieldCreatedAt:        {Type: field.TypeTime, Column: plan.FieldCreatedAt},
			plan.FieldUpdatedAt:        {Type: field.TypeTime, Column: plan.FieldUpdatedAt},
		},
	}
	graph.Nodes[1] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   plancompletion.Table,
			Columns: plancompletion.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: plancompletion.FieldID,
			},
		},
		Type: "PlanCompletion",
		Fields: map[string]*sqlgraph.FieldSpec{
			plancompletion.FieldPlanID:      {Type: field.TypeUUID, Column: plancompletion.FieldPlanID},
			plancompletion.FieldUserID:      {Type: field.TypeUUID, Column: plancompletion.FieldUserID},
			plancompletion.FieldCompleted:   {Type: field.TypeBool, Column: plancompletion.FieldCompleted},
			plancompletion.FieldCompletedAt: {Type: field.TypeTime, Column: plancompletion.FieldCompletedAt},
		},
	}
	graph.Nodes[2] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   sharedplan.Table,
			Columns: sharedplan.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: sharedplan.FieldID,
			},
		},
		Type: "SharedPlan",
		Fields: map[string]*sqlgraph.FieldSpec{
			sharedplan.FieldPlanID:       {Type: field.TypeUUID, Column: sharedplan.FieldPlanID},
			sharedplan.FieldOwnerID:      {Type: field.TypeUUID, Column: sharedplan.FieldOwnerID},
			sharedplan.FieldSharedWithID: {Type: field.TypeUUID, Column: sharedplan.FieldSharedWithID},
			sharedplan.FieldPermission:   {Type: field.TypeEnum, Column: sharedplan.FieldPermission},
			sharedplan.FieldCreatedAt:    {Type: field.TypeTime, Column: sharedplan.FieldCreatedAt},
		},
	}
	graph.Nodes[3] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   task.Table,
			Columns: task.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: task.FieldID,
			},
		},
		Type: "Task",
		Fields: map[string]*sqlgraph.FieldSpec{
			task.FieldUserID:      {Type: field.TypeUUID, Column: task.FieldUserID},
			task.FieldPlanID:      {Type: field.TypeUUID, Column: task.FieldPlanID},
			task.FieldTitle:       {Type: field.TypeString, Column: task.FieldTitle},
			task.FieldDescription: {Type: field.TypeString, Column: task.FieldDescription},
			task.FieldDate:        {Type: field.TypeTime, Column: task.FieldDate},
			task.FieldPlanOrder:   {Type: field.TypeInt, Column: task.FieldPlanOrder},
			task.FieldPriority:    {Type: field.TypeInt, Column: task.FieldPriority},
			task.FieldCompleted:   {Type: field.TypeBool, Column: task.FieldCompleted},
			task.FieldCreatedAt:   {Type: field.TypeTime, Column: task.FieldCreatedAt},
			task.FieldUpdatedAt:   {Type: field.TypeTime, Column: task.FieldUpdatedAt},
		},
	}
	graph.Nodes[4] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   taskcompletion.Table,
			Columns: taskcompletion.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: taskcompletion.FieldID,
			},
		},
		Type: "TaskCompletion",
		Fields: map[string]*sqlgraph.FieldSpec{
			taskcompletion.FieldTaskID:      {Type: field.TypeUUID, Column: taskcompletion.FieldTaskID},
			taskcompletion.FieldUserID:      {Type: field.TypeUUID, Column: taskcompletion.FieldUserID},
			taskcompletion.FieldCompleted:   {Type: field.TypeBool, Column: taskcompletion.FieldCompleted},
			taskcompletion.FieldCompletedAt: {Type: field.TypeTime, Column: taskcompletion.FieldCompletedAt},
		},
	}
	graph.Nodes[5] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   user.Table,
			Columns: user.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: user.FieldID,
			},
		},
		Type: "User",
		Fields: map[string]*sqlgraph.FieldSpec{
			user.FieldEmail:        {Type: field.TypeString, Column: user.FieldEmail},
			user.FieldPasswordHash: {Type: field.TypeString, Column: user.FieldPasswordHash},
			user.FieldDisplayName:  {Type: field.TypeString, Column: user.FieldDisplayName},
			user.FieldCreatedAt:    {Type: field.TypeTime, Column: user.FieldCreatedAt},
			user.FieldUpdatedAt:    {Type: field.TypeTime, Column: user.FieldUpdatedAt},
		},
	}
	graph.MustAddE(
		"owner",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   plan.OwnerTable,
			Columns: []string{plan.OwnerColumn},
			Bidi:    false,
		},
		"Plan",
		"User",
	)
	graph.MustAddE(
		"tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plan.TasksTable,
			Columns: []string{plan.TasksColumn},
			Bidi:    false,
		},
		"Plan",
		"Task",
	)
	graph.MustAddE(
		"shares",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plan.SharesTable,
			Columns: []string{plan.SharesColumn},
			Bidi:    false,
		},
		"Plan",
		"SharedPlan",
	)
	graph.MustAddE(
		"completions",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plan.CompletionsTable,
			Columns: []string{plan.CompletionsColumn},
			Bidi:    false,
		},
		"Plan",
		"PlanCompletion",
	)
	graph.MustAddE(
		"plan",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   plancompletion.PlanTable,
			Columns: []string{plancompletion.PlanColumn},
			Bidi:    false,
		},
		"PlanCompletion",
		"Plan",
	)
	graph.MustAddE(
		"plan",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharedplan.PlanTable,
			Columns: []string{sharedplan.PlanColumn},
			Bidi:    false,
		},
		"SharedPlan",
		"Plan",
	)
	graph.MustAddE(
		"shared_with",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharedplan.SharedWithTable,
			Columns: []string{sharedplan.SharedWithColumn},
			Bidi:    false,
		},
		"SharedPlan",
		"User",
	)
	graph.MustAddE(
		"creator",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.CreatorTable,
			Columns: []string{task.CreatorColumn},
			Bidi:    false,
		},
		"Task",
		"User",
	)
	graph.MustAddE(
		"plan",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.PlanTable,
			Columns: []string{task.PlanColumn},
			Bidi:    false,
		},
		"Task",
		"Plan",
	)
	graph.MustAddE(
		"completions",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CompletionsTable,
			Columns: []string{task.CompletionsColumn},
			Bidi:    false,
		},
		"Task",
		"TaskCompletion",
	)
	graph.MustAddE(
		"task",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskcompletion.TaskTable,
			Columns: []string{taskcompletion.TaskColumn},
			Bidi:    false,
		},
		"TaskCompletion",
		"Task",
	)
	graph.MustAddE(
		"plans",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PlansTable,
			Columns: []string{user.PlansColumn},
			Bidi:    false,
		},
		"User",
		"Plan",
	)
	graph.MustAddE(
		"tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TasksTable,
			Columns: []string{user.TasksColumn},
			Bidi:    false,
		},
		"User",
		"Task",
	)
	graph.MustAddE(
		"incoming_shares",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.IncomingSharesTable,
			Columns: []string{user.IncomingSharesColumn},
			Bidi:    false,
		},
		"User",
		"SharedPlan",
	)
	return graph
}()

// predicateAdder wraps the addPredicate method.
// All update, update-one and query builders implement this interface.
type predicateAdder interface {
	addPredicate(func(s *sql.Selector))
}

// addPredicate implements the predicateAdder interface.
func (_q *PlanQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the PlanQuery builder.
func (_q *PlanQuery) Filter() *PlanFilter {
	return &PlanFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *PlanMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the PlanMutation builder.
func (m *PlanMutation) Filter() *PlanFilter {
	return &PlanFilter{config: m.config, predicateAdder: m}
}

// PlanFilter provides a generic filtering capability at runtime for PlanQuery.
type PlanFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *PlanFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[0].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *PlanFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(plan.FieldID))
}

// WhereOwnerID applies the entql [16]byte predicate on the owner_id field.
func (f *PlanFilter) WhereOwnerID(p entql.ValueP) {
	f.Where(p.Field(plan.FieldOwnerID))
}

// WhereTitle applies the entql string predicate on the title field.
func (f *PlanFilter) WhereTitle(p entql.StringP) {
	f.Where(p.Field(plan.FieldTitle))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *PlanFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(plan.FieldDescription))
}

// WhereDate applies the entql time.Time predicate on the date field.
func (f *PlanFilter) WhereDate(p entql.TimeP) {
	f.Where(p.Field(plan.FieldDate))
}

// WhereCurrentTaskIndex applies the entql int predicate on the current_task_index field.
func (f *PlanFilter) WhereCurrentTaskIndex(p entql.IntP) {
	f.Where(p.Field(plan.FieldCurrentTaskIndex))
}

// WhereCompleted applies the entql bool predicate on the completed field.
func (f *PlanFilter) WhereCompleted(p entql.BoolP) {
	f.Where(p.Field(plan.FieldCompleted))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *PlanFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(plan.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *PlanFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(plan.FieldUpdatedAt))
}

// WhereHasOwner applies a predicate to check if query has an edge owner.
func (f *PlanFilter) WhereHasOwner() {
	f.Where(entql.HasEdge("owner"))
}

// WhereHasOwnerWith applies a predicate to check if query has an edge owner with a given conditions (other predicates).
func (f *PlanFilter) WhereHasOwnerWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("owner", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasTasks applies a predicate to check if query has an edge tasks.
func (f *PlanFilter) WhereHasTasks() {
	f.Where(entql.HasEdge("tasks"))
}

// WhereHasTasksWith applies a predicate to check if query has an edge tasks with a given conditions (other predicates).
func (f *PlanFilter) WhereHasTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasShares applies a predicate to check if query has an edge shares.
func (f *PlanFilter) WhereHasShares() {
	f.Where(entql.HasEdge("shares"))
}

// WhereHasSharesWith applies a predicate to check if query has an edge shares with a given conditions (other predicates).
func (f *PlanFilter) WhereHasSharesWith(preds ...predicate.SharedPlan) {
	f.Where(entql.HasEdgeWith("shares", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasCompletions applies a predicate to check if query has an edge completions.
func (f *PlanFilter) WhereHasCompletions() {
	f.Where(entql.HasEdge("completions"))
}

// WhereHasCompletionsWith applies a predicate to check if query has an edge completions with a given conditions (other predicates).
func (f *PlanFilter) WhereHasCompletionsWith(preds ...predicate.PlanCompletion) {
	f.Where(entql.HasEdgeWith("completions", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *PlanCompletionQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the PlanCompletionQuery builder.
func (_q *PlanCompletionQuery) Filter() *PlanCompletionFilter {
	return &PlanCompletionFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *PlanCompletionMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the PlanCompletionMutation builder.
func (m *PlanCompletionMutation) Filter() *PlanCompletionFilter {
	return &PlanCompletionFilter{config: m.config, predicateAdder: m}
}

// PlanCompletionFilter provides a generic filtering capability at runtime for PlanCompletionQuery.
type PlanCompletionFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *PlanCompletionFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[1].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *PlanCompletionFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(plancompletion.FieldID))
}

// WherePlanID applies the entql [16]byte predicate on the plan_id field.
func (f *PlanCompletionFilter) WherePlanID(p entql.ValueP) {
	f.Where(p.Field(plancompletion.FieldPlanID))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *PlanCompletionFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(plancompletion.FieldUserID))
}

// WhereCompleted applies the entql bool predicate on the completed field.
func (f *PlanCompletionFilter) WhereCompleted(p entql.BoolP) {
	f.Where(p.Field(plancompletion.FieldCompleted))
}

// WhereCompletedAt applies the entql time.Time predicate on the completed_at field.
func (f *PlanCompletionFilter) WhereCompletedAt(p entql.TimeP) {
	f.Where(p.Field(plancompletion.FieldCompletedAt))
}

// WhereHasPlan applies a predicate to check if query has an edge plan.
func (f *PlanCompletionFilter) WhereHasPlan() {
	f.Where(entql.HasEdge("plan"))
}

// WhereHasPlanWith applies a predicate to check if query has an edge plan with a given conditions (other predicates).
func (f *PlanCompletionFilter) WhereHasPlanWith(preds ...predicate.Plan) {
	f.Where(entql.HasEdgeWith("plan", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *SharedPlanQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the SharedPlanQuery builder.
func (_q *SharedPlanQuery) Filter() *SharedPlanFilter {
	return &SharedPlanFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *SharedPlanMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the SharedPlanMutation builder.
func (m *SharedPlanMutation) Filter() *SharedPlanFilter {
	return &SharedPlanFilter{config: m.config, predicateAdder: m}
}

// SharedPlanFilter provides a generic filtering capability at runtime for SharedPlanQuery.
type SharedPlanFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *SharedPlanFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[2].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *SharedPlanFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(sharedplan.FieldID))
}

// WherePlanID applies the entql [16]byte predicate on the plan_id field.
func (f *SharedPlanFilter) WherePlanID(p entql.ValueP) {
	f.Where(p.Field(sharedplan.FieldPlanID))
}

// WhereOwnerID applies the entql [16]byte predicate on the owner_id field.
func (f *SharedPlanFilter) WhereOwnerID(p entql.ValueP) {
	f.Where(p.Field(sharedplan.FieldOwnerID))
}

// WhereSharedWithID applies the entql [16]byte predicate on the shared_with_id field.
func (f *SharedPlanFilter) WhereSharedWithID(p entql.ValueP) {
	f.Where(p.Field(sharedplan.FieldSharedWithID))
}

// WherePermission applies the entql string predicate on the permission field.
func (f *SharedPlanFilter) WherePermission(p entql.StringP) {
	f.Where(p.Field(sharedplan.FieldPermission))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *SharedPlanFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(sharedplan.FieldCreatedAt))
}

// WhereHasPlan applies a predicate to check if query has an edge plan.
func (f *SharedPlanFilter) WhereHasPlan() {
	f.Where(entql.HasEdge("plan"))
}

// WhereHasPlanWith applies a predicate to check if query has an edge plan with a given conditions (other predicates).
func (f *SharedPlanFilter) WhereHasPlanWith(preds ...predicate.Plan) {
	f.Where(entql.HasEdgeWith("plan", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasSharedWith applies a predicate to check if query has an edge shared_with.
func (f *SharedPlanFilter) WhereHasSharedWith() {
	f.Where(entql.HasEdge("shared_with"))
}

// WhereHasSharedWithWith applies a predicate to check if query has an edge shared_with with a given conditions (other predicates).
func (f *SharedPlanFilter) WhereHasSharedWithWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("shared_with", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *TaskQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskQuery builder.
func (_q *TaskQuery) Filter() *TaskFilter {
	return &TaskFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskMutation builder.
func (m *TaskMutation) Filter() *TaskFilter {
	return &TaskFilter{config: m.config, predicateAdder: m}
}

// TaskFilter provides a generic filtering capability at runtime for TaskQuery.
type TaskFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[3].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(task.FieldID))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *TaskFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(task.FieldUserID))
}

// WherePlanID applies the entql [16]byte predicate on the plan_id field.
func (f *TaskFilter) WherePlanID(p entql.ValueP) {
	f.Where(p.Field(task.FieldPlanID))
}

// WhereTitle applies the entql string predicate on the title field.
func (f *TaskFilter) WhereTitle(p entql.StringP) {
	f.Where(p.Field(task.FieldTitle))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TaskFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(task.FieldDescription))
}

// WhereDate applies the entql time.Time predicate on the date field.
func (f *TaskFilter) WhereDate(p entql.TimeP) {
	f.Where(p.Field(task.FieldDate))
}

// WherePlanOrder applies the entql int predicate on the plan_order field.
func (f *TaskFilter) WherePlanOrder(p entql.IntP) {
	f.Where(p.Field(task.FieldPlanOrder))
}

// WherePriority applies the entql int predicate on the priority field.
func (f *TaskFilter) WherePriority(p entql.IntP) {
	f.Where(p.Field(task.FieldPriority))
}

// WhereCompleted applies the entql bool predicate on the completed field.
func (f *TaskFilter) WhereCompleted(p entql.BoolP) {
	f.Where(p.Field(task.FieldCompleted))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TaskFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldUpdatedAt))
}

// WhereHasCreator applies a predicate to check if query has an edge creator.
func (f *TaskFilter) WhereHasCreator() {
	f.Where(entql.HasEdge("creator"))
}

// WhereHasCreatorWith applies a predicate to check if query has an edge creator with a given conditions (other predicates).
func (f *TaskFilter) WhereHasCreatorWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("creator", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasPlan applies a predicate to check if query has an edge plan.
func (f *TaskFilter) WhereHasPlan() {
	f.Where(entql.HasEdge("plan"))
}

// WhereHasPlanWith applies a predicate to check if query has an edge plan with a given conditions (other predicates).
func (f *TaskFilter) WhereHasPlanWith(preds ...predicate.Plan) {
	f.Where(entql.HasEdgeWith("plan", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasCompletions applies a predicate to check if query has an edge completions.
func (f *TaskFilter) WhereHasCompletions() {
	f.Where(entql.HasEdge("completions"))
}

// WhereHasCompletionsWith applies a predicate to check if query has an edge completions with a given conditions (other predicates).
func (f *TaskFilter) WhereHasCompletionsWith(preds ...predicate.TaskCompletion) {
	f.Where(entql.HasEdgeWith("completions", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *TaskCompletionQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskCompletionQuery builder.
func (_q *TaskCompletionQuery) Filter() *TaskCompletionFilter {
	return &TaskCompletionFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskCompletionMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskCompletionMutation builder.
func (m *TaskCompletionMutation) Filter() *TaskCompletionFilter {
	return &TaskCompletionFilter{config: m.config, predicateAdder: m}
}

// TaskCompletionFilter provides a generic filtering capability at runtime for TaskCompletionQuery.
type TaskCompletionFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskCompletionFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[4].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskCompletionFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(taskcompletion.FieldID))
}

// WhereTaskID applies the entql [16]byte predicate on the task_id field.
func (f *TaskCompletionFilter) WhereTaskID(p entql.ValueP) {
	f.Where(p.Field(taskcompletion.FieldTaskID))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *TaskCompletionFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(taskcompletion.FieldUserID))
}

// WhereCompleted applies the entql bool predicate on the completed field.
func (f *TaskCompletionFilter) WhereCompleted(p entql.BoolP) {
	f.Where(p.Field(taskcompletion.FieldCompleted))
}

// WhereCompletedAt applies the entql time.Time predicate on the completed_at field.
func (f *TaskCompletionFilter) WhereCompletedAt(p entql.TimeP) {
	f.Where(p.Field(taskcompletion.FieldCompletedAt))
}

// WhereHasTask applies a predicate to check if query has an edge task.
func (f *TaskCompletionFilter) WhereHasTask() {
	f.Where(entql.HasEdge("task"))
}

// WhereHasTaskWith applies a predicate to check if query has an edge task with a given conditions (other predicates).
func (f *TaskCompletionFilter) WhereHasTaskWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("task", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *UserQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the UserQuery builder.
func (_q *UserQuery) Filter() *UserFilter {
	return &UserFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *UserMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the UserMutation builder.
func (m *UserMutation) Filter() *UserFilter {
	return &UserFilter{config: m.config, predicateAdder: m}
}

// UserFilter provides a generic filtering capability at runtime for UserQuery.
type UserFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *UserFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[5].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *UserFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(user.FieldID))
}

// WhereEmail applies the entql string predicate on the email field.
func (f *UserFilter) WhereEmail(p entql.StringP) {
	f.Where(p.Field(user.FieldEmail))
}

// WherePasswordHash applies the entql string predicate on the password_hash field.
func (f *UserFilter) WherePasswordHash(p entql.StringP) {
	f.Where(p.Field(user.FieldPasswordHash))
}

// WhereDisplayName applies the entql string predicate on the display_name field.
func (f *UserFilter) WhereDisplayName(p entql.StringP) {
	f.Where(p.Field(user.FieldDisplayName))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *UserFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *UserFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldUpdatedAt))
}

// WhereHasPlans applies a predicate to check if query has an edge plans.
func (f *UserFilter) WhereHasPlans() {
	f.Where(entql.HasEdge("plans"))
}

// WhereHasPlansWith applies a predicate to check if query has an edge plans with a given conditions (other predicates).
func (f *UserFilter) WhereHasPlansWith(preds ...predicate.Plan) {
	f.Where(entql.HasEdgeWith("plans", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasTasks applies a predicate to check if query has an edge tasks.
func (f *UserFilter) WhereHasTasks() {
	f.Where(entql.HasEdge("tasks"))
}

// WhereHasTasksWith applies a predicate to check if query has an edge tasks with a given conditions (other predicates).
func (f *UserFilter) WhereHasTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasIncomingShares applies a predicate to check if query has an edge incoming_shares.
func (f *UserFilter) WhereHasIncomingShares() {
	f.Where(entql.HasEdge("incoming_shares"))
}

// WhereHasIncomingSharesWith applies a predicate to check if query has an edge incoming_shares with a given conditions (other predicates).
func (f *UserFilter) WhereHasIncomingSharesWith(preds ...predicate.SharedPlan) {
	f.Where(entql.HasEdgeWith("incoming_shares", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}
