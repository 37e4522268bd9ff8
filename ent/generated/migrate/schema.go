// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PlansColumns holds the columns for the "plans" table.
	PlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "date", Type: field.TypeTime},
		{Name: "current_task_index", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeUUID},
	}
	// PlansTable holds the schema information for the "plans" table.
	PlansTable = &schema.Table{
		Name:       "plans",
		Columns:    PlansColumns,
		PrimaryKey: []*schema.Column{PlansColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "plans_users_plans",
				Columns:    []*schema.Column{PlansColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "plan_owner_id",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[8]},
			},
			{
				Name:    "plan_owner_id_date",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[8], PlansColumns[3]},
			},
			{
				Name:    "plan_created_at",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[6]},
			},
		},
	}
	// PlanCompletionsColumns holds the columns for the "plan_completions" table.
	PlanCompletionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "plan_id", Type: field.TypeUUID},
	}
	// PlanCompletionsTable holds the schema information for the "plan_completions" table.
	PlanCompletionsTable = &schema.Table{
		Name:       "plan_completions",
		Columns:    PlanCompletionsColumns,
		PrimaryKey: []*schema.Column{PlanCompletionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "plan_completions_plans_completions",
				Columns:    []*schema.Column{PlanCompletionsColumns[4]},
				RefColumns: []*schema.Column{PlansColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "plancompletion_plan_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{PlanCompletionsColumns[4], PlanCompletionsColumns[1]},
			},
			{
				Name:    "plancompletion_user_id_completed_at",
				Unique:  false,
				Columns: []*schema.Column{PlanCompletionsColumns[1], PlanCompletionsColumns[3]},
			},
		},
	}
	// SharedPlansColumns holds the columns for the "shared_plans" table.
	SharedPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "permission", Type: field.TypeEnum, Enums: []string{"read", "write", "individual"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeUUID},
		{Name: "shared_with_id", Type: field.TypeUUID},
	}
	// SharedPlansTable holds the schema information for the "shared_plans" table.
	SharedPlansTable = &schema.Table{
		Name:       "shared_plans",
		Columns:    SharedPlansColumns,
		PrimaryKey: []*schema.Column{SharedPlansColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "shared_plans_plans_shares",
				Columns:    []*schema.Column{SharedPlansColumns[4]},
				RefColumns: []*schema.Column{PlansColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "shared_plans_users_incoming_shares",
				Columns:    []*schema.Column{SharedPlansColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sharedplan_plan_id_shared_with_id",
				Unique:  true,
				Columns: []*schema.Column{SharedPlansColumns[4], SharedPlansColumns[5]},
			},
			{
				Name:    "sharedplan_shared_with_id",
				Unique:  false,
				Columns: []*schema.Column{SharedPlansColumns[5]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "date", Type: field.TypeTime},
		{Name: "plan_order", Type: field.TypeInt, Default: 0},
		{Name: "priority", Type: field.TypeInt, Default: 3},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeUUID, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_plans_tasks",
				Columns:    []*schema.Column{TasksColumns[9]},
				RefColumns: []*schema.Column{PlansColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "tasks_users_tasks",
				Columns:    []*schema.Column{TasksColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_plan_id_plan_order",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9], TasksColumns[4]},
			},
			{
				Name:    "task_user_id_date",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10], TasksColumns[3]},
			},
			{
				Name:    "task_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7]},
			},
		},
	}
	// TaskCompletionsColumns holds the columns for the "task_completions" table.
	TaskCompletionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "task_id", Type: field.TypeUUID},
	}
	// TaskCompletionsTable holds the schema information for the "task_completions" table.
	TaskCompletionsTable = &schema.Table{
		Name:       "task_completions",
		Columns:    TaskCompletionsColumns,
		PrimaryKey: []*schema.Column{TaskCompletionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_completions_tasks_completions",
				Columns:    []*schema.Column{TaskCompletionsColumns[4]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskcompletion_task_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{TaskCompletionsColumns[4], TaskCompletionsColumns[1]},
			},
			{
				Name:    "taskcompletion_user_id",
				Unique:  false,
				Columns: []*schema.Column{TaskCompletionsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Size: 100},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PlansTable,
		PlanCompletionsTable,
		SharedPlansTable,
		TasksTable,
		TaskCompletionsTable,
		UsersTable,
	}
)

func init() {
	PlansTable.ForeignKeys[0].RefTable = UsersTable
	PlanCompletionsTable.ForeignKeys[0].RefTable = PlansTable
	SharedPlansTable.ForeignKeys[0].RefTable = PlansTable
	SharedPlansTable.ForeignKeys[1].RefTable = UsersTable
	TasksTable.ForeignKeys[0].RefTable = PlansTable
	TasksTable.ForeignKeys[1].RefTable = UsersTable
	TaskCompletionsTable.ForeignKeys[0].RefTable = TasksTable
}
