package tools

import "net/http"

func databaseFields() []Param {
	return []Param{
		field("image", TypeString, "Docker image override"),
		field("is_public", TypeBoolean, "Expose the database publicly"),
		field("public_port", TypeNumber, "Public port when is_public is set"),
		field("limits_memory", TypeString, "Memory limit, e.g. '512m'"),
		field("limits_cpus", TypeString, "CPU limit, e.g. '0.5'"),
	}
}

// createDatabaseRoute builds the create route for one engine; extra lists the
// engine's credential fields.
func createDatabaseRoute(engine, label string, extra ...Param) Route {
	return Route{
		Name:        "coolify_create_" + engine + "_database",
		Description: "Create a " + label + " database.",
		Method:      http.MethodPost,
		Path:        "/databases/" + engine,
		Params:      concat(placementFields(), databaseFields(), extra),
		Passthrough: true,
	}
}

func databaseRoutes() []Route {
	db := uuidParam("database")
	return []Route{
		{
			Name:        "coolify_list_databases",
			Description: "List all databases.",
			Method:      http.MethodGet,
			Path:        "/databases",
		},
		{
			Name:        "coolify_get_database",
			Description: "Get a database by UUID.",
			Method:      http.MethodGet,
			Path:        "/databases/{uuid}",
			Params:      []Param{db},
		},
		{
			Name:        "coolify_update_database",
			Description: "Update a database's settings. Any database field accepted by Coolify may be passed.",
			Method:      http.MethodPatch,
			Path:        "/databases/{uuid}",
			Params: concat([]Param{
				db,
				field("name", TypeString, "Database name"),
				field("description", TypeString, "Database description"),
			}, databaseFields()),
			Passthrough: true,
		},
		{
			Name:        "coolify_delete_database",
			Description: "Delete a database. Optional flags control cleanup of volumes, configuration and networks.",
			Method:      http.MethodDelete,
			Path:        "/databases/{uuid}",
			Params:      concat([]Param{db}, deleteFlags()),
		},
		createDatabaseRoute("postgresql", "PostgreSQL",
			field("postgres_user", TypeString, "PostgreSQL user"),
			field("postgres_password", TypeString, "PostgreSQL password"),
			field("postgres_db", TypeString, "Initial database name"),
		),
		createDatabaseRoute("mysql", "MySQL",
			field("mysql_root_password", TypeString, "Root password"),
			field("mysql_user", TypeString, "MySQL user"),
			field("mysql_password", TypeString, "MySQL password"),
			field("mysql_database", TypeString, "Initial database name"),
		),
		createDatabaseRoute("mariadb", "MariaDB",
			field("mariadb_root_password", TypeString, "Root password"),
			field("mariadb_user", TypeString, "MariaDB user"),
			field("mariadb_password", TypeString, "MariaDB password"),
			field("mariadb_database", TypeString, "Initial database name"),
		),
		createDatabaseRoute("mongodb", "MongoDB",
			field("mongo_initdb_root_username", TypeString, "Root username"),
			field("mongo_initdb_root_password", TypeString, "Root password"),
			field("mongo_initdb_database", TypeString, "Initial database name"),
		),
		createDatabaseRoute("redis", "Redis",
			field("redis_password", TypeString, "Redis password"),
		),
		createDatabaseRoute("keydb", "KeyDB",
			field("keydb_password", TypeString, "KeyDB password"),
		),
		createDatabaseRoute("clickhouse", "ClickHouse",
			field("clickhouse_admin_user", TypeString, "Admin user"),
			field("clickhouse_admin_password", TypeString, "Admin password"),
		),
		createDatabaseRoute("dragonfly", "Dragonfly",
			field("dragonfly_password", TypeString, "Dragonfly password"),
		),
		{
			Name:        "coolify_start_database",
			Description: "Start a database.",
			Method:      http.MethodGet,
			Path:        "/databases/{uuid}/start",
			Params:      []Param{db},
		},
		{
			Name:        "coolify_stop_database",
			Description: "Stop a database.",
			Method:      http.MethodGet,
			Path:        "/databases/{uuid}/stop",
			Params:      []Param{db},
		},
		{
			Name:        "coolify_restart_database",
			Description: "Restart a database.",
			Method:      http.MethodGet,
			Path:        "/databases/{uuid}/restart",
			Params:      []Param{db},
		},
		{
			Name:        "coolify_list_database_backups",
			Description: "List the scheduled backups of a database and their executions.",
			Method:      http.MethodGet,
			Path:        "/databases/{uuid}/backups",
			Params:      []Param{db},
		},
	}
}
