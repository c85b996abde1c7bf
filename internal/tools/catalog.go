package tools

import "net/http"

// DefaultRoutes returns the Coolify tool catalog in advertised order.
func DefaultRoutes() []Route {
	var routes []Route
	routes = append(routes, systemRoutes()...)
	routes = append(routes, teamRoutes()...)
	routes = append(routes, serverRoutes()...)
	routes = append(routes, projectRoutes()...)
	routes = append(routes, privateKeyRoutes()...)
	routes = append(routes, applicationRoutes()...)
	routes = append(routes, databaseRoutes()...)
	routes = append(routes, serviceRoutes()...)
	routes = append(routes, deploymentRoutes()...)
	return routes
}

// NewDefaultRegistry builds the registry from DefaultRoutes.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(DefaultRoutes())
}

func uuidParam(resource string) Param {
	return Param{Name: "uuid", Type: TypeString, Description: "UUID of the " + resource, Required: true, In: InPath}
}

func pathParam(name, description string) Param {
	return Param{Name: name, Type: TypeString, Description: description, Required: true, In: InPath}
}

func queryParam(name string, typ ParamType, description string) Param {
	return Param{Name: name, Type: typ, Description: description, In: InQuery}
}

func field(name string, typ ParamType, description string) Param {
	return Param{Name: name, Type: typ, Description: description, In: InBody}
}

func requiredField(name string, typ ParamType, description string) Param {
	return Param{Name: name, Type: typ, Description: description, Required: true, In: InBody}
}

// deleteFlags are the cleanup switches shared by application, database and
// service deletion.
func deleteFlags() []Param {
	return []Param{
		queryParam("delete_configurations", TypeBoolean, "Delete configuration files (default: true on the server)"),
		queryParam("delete_volumes", TypeBoolean, "Delete persistent volumes"),
		queryParam("docker_cleanup", TypeBoolean, "Run docker cleanup after deletion"),
		queryParam("delete_connected_networks", TypeBoolean, "Delete connected docker networks"),
	}
}

// placementFields locate a new resource: project, environment and server.
func placementFields() []Param {
	return []Param{
		requiredField("project_uuid", TypeString, "UUID of the project"),
		requiredField("server_uuid", TypeString, "UUID of the target server"),
		field("environment_name", TypeString, "Environment name (environment_name or environment_uuid is required)"),
		field("environment_uuid", TypeString, "Environment UUID (environment_name or environment_uuid is required)"),
		field("destination_uuid", TypeString, "Destination UUID when the server has more than one destination"),
		field("name", TypeString, "Resource name"),
		field("description", TypeString, "Resource description"),
		field("instant_deploy", TypeBoolean, "Deploy immediately after creation"),
	}
}

// envFields are the attributes of an environment variable.
func envFields() []Param {
	return []Param{
		field("is_preview", TypeBoolean, "Use the variable for preview deployments"),
		field("is_literal", TypeBoolean, "Treat the value literally (no interpolation)"),
		field("is_multiline", TypeBoolean, "The value spans multiple lines"),
		field("is_shown_once", TypeBoolean, "Hide the value after creation"),
	}
}

func concat(groups ...[]Param) []Param {
	var out []Param
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func systemRoutes() []Route {
	return []Route{
		{
			Name:        "coolify_get_version",
			Description: "Get the Coolify instance version. Use this to verify connectivity and credentials.",
			Method:      http.MethodGet,
			Path:        "/version",
		},
		{
			Name:        "coolify_health_check",
			Description: "Check the health of the Coolify API.",
			Method:      http.MethodGet,
			Path:        "/health",
		},
		{
			Name:        "coolify_enable_api",
			Description: "Enable the Coolify API for the instance (root team only).",
			Method:      http.MethodGet,
			Path:        "/enable",
		},
		{
			Name:        "coolify_disable_api",
			Description: "Disable the Coolify API for the instance (root team only).",
			Method:      http.MethodGet,
			Path:        "/disable",
		},
		{
			Name:        "coolify_list_resources",
			Description: "List every resource (applications, databases, services) visible to the current team.",
			Method:      http.MethodGet,
			Path:        "/resources",
		},
	}
}

func teamRoutes() []Route {
	teamID := Param{Name: "id", Type: TypeNumber, Description: "Team ID", Required: true, In: InPath}
	return []Route{
		{
			Name:        "coolify_list_teams",
			Description: "List all teams the token can access.",
			Method:      http.MethodGet,
			Path:        "/teams",
		},
		{
			Name:        "coolify_get_team",
			Description: "Get a team by ID.",
			Method:      http.MethodGet,
			Path:        "/teams/{id}",
			Params:      []Param{teamID},
		},
		{
			Name:        "coolify_get_team_members",
			Description: "List the members of a team.",
			Method:      http.MethodGet,
			Path:        "/teams/{id}/members",
			Params:      []Param{teamID},
		},
		{
			Name:        "coolify_get_current_team",
			Description: "Get the team that owns the API token.",
			Method:      http.MethodGet,
			Path:        "/teams/current",
		},
		{
			Name:        "coolify_get_current_team_members",
			Description: "List the members of the team that owns the API token.",
			Method:      http.MethodGet,
			Path:        "/teams/current/members",
		},
	}
}

func serverRoutes() []Route {
	serverFields := []Param{
		field("name", TypeString, "Server name"),
		field("description", TypeString, "Server description"),
		field("port", TypeNumber, "SSH port (default: 22)"),
		field("user", TypeString, "SSH user (default: root)"),
		field("is_build_server", TypeBoolean, "Use the server only for builds"),
		field("proxy_type", TypeString, "Proxy type: traefik, caddy or none"),
	}
	return []Route{
		{
			Name:        "coolify_list_servers",
			Description: "List all servers.",
			Method:      http.MethodGet,
			Path:        "/servers",
		},
		{
			Name:        "coolify_get_server",
			Description: "Get a server by UUID.",
			Method:      http.MethodGet,
			Path:        "/servers/{uuid}",
			Params:      []Param{uuidParam("server")},
		},
		{
			Name:        "coolify_create_server",
			Description: "Register a new server reachable over SSH.",
			Method:      http.MethodPost,
			Path:        "/servers",
			Params: concat([]Param{
				requiredField("ip", TypeString, "IP address or hostname"),
				requiredField("private_key_uuid", TypeString, "UUID of the private key used for SSH"),
				field("instant_validate", TypeBoolean, "Validate the server right after creation"),
			}, serverFields),
			Passthrough: true,
		},
		{
			Name:        "coolify_update_server",
			Description: "Update a server's settings. Only the fields provided are changed.",
			Method:      http.MethodPatch,
			Path:        "/servers/{uuid}",
			Params: concat([]Param{
				uuidParam("server"),
				field("ip", TypeString, "IP address or hostname"),
				field("private_key_uuid", TypeString, "UUID of the private key used for SSH"),
			}, serverFields),
			Passthrough: true,
		},
		{
			Name:        "coolify_delete_server",
			Description: "Delete a server. The server must have no resources.",
			Method:      http.MethodDelete,
			Path:        "/servers/{uuid}",
			Params:      []Param{uuidParam("server")},
		},
		{
			Name:        "coolify_get_server_resources",
			Description: "List the resources deployed on a server.",
			Method:      http.MethodGet,
			Path:        "/servers/{uuid}/resources",
			Params:      []Param{uuidParam("server")},
		},
		{
			Name:        "coolify_get_server_domains",
			Description: "List the domains routed by a server.",
			Method:      http.MethodGet,
			Path:        "/servers/{uuid}/domains",
			Params:      []Param{uuidParam("server")},
		},
		{
			Name:        "coolify_validate_server",
			Description: "Start validation of a server's SSH connection and docker installation.",
			Method:      http.MethodGet,
			Path:        "/servers/{uuid}/validate",
			Params:      []Param{uuidParam("server")},
		},
	}
}

func projectRoutes() []Route {
	envName := pathParam("environment_name_or_uuid", "Environment name or UUID")
	return []Route{
		{
			Name:        "coolify_list_projects",
			Description: "List all projects.",
			Method:      http.MethodGet,
			Path:        "/projects",
		},
		{
			Name:        "coolify_get_project",
			Description: "Get a project by UUID.",
			Method:      http.MethodGet,
			Path:        "/projects/{uuid}",
			Params:      []Param{uuidParam("project")},
		},
		{
			Name:        "coolify_create_project",
			Description: "Create a project.",
			Method:      http.MethodPost,
			Path:        "/projects",
			Params: []Param{
				requiredField("name", TypeString, "Project name"),
				field("description", TypeString, "Project description"),
			},
			Passthrough: true,
		},
		{
			Name:        "coolify_update_project",
			Description: "Update a project's name or description.",
			Method:      http.MethodPatch,
			Path:        "/projects/{uuid}",
			Params: []Param{
				uuidParam("project"),
				field("name", TypeString, "Project name"),
				field("description", TypeString, "Project description"),
			},
			Passthrough: true,
		},
		{
			Name:        "coolify_delete_project",
			Description: "Delete a project. The project must be empty.",
			Method:      http.MethodDelete,
			Path:        "/projects/{uuid}",
			Params:      []Param{uuidParam("project")},
		},
		{
			Name:        "coolify_get_project_environment",
			Description: "Get one environment of a project, including its resources.",
			Method:      http.MethodGet,
			Path:        "/projects/{uuid}/{environment_name_or_uuid}",
			Params:      []Param{uuidParam("project"), envName},
		},
		{
			Name:        "coolify_list_environments",
			Description: "List the environments of a project.",
			Method:      http.MethodGet,
			Path:        "/projects/{uuid}/environments",
			Params:      []Param{uuidParam("project")},
		},
		{
			Name:        "coolify_create_environment",
			Description: "Create an environment in a project.",
			Method:      http.MethodPost,
			Path:        "/projects/{uuid}/environments",
			Params: []Param{
				uuidParam("project"),
				requiredField("name", TypeString, "Environment name"),
			},
			Passthrough: true,
		},
		{
			Name:        "coolify_delete_environment",
			Description: "Delete an empty environment from a project.",
			Method:      http.MethodDelete,
			Path:        "/projects/{uuid}/environments/{environment_name_or_uuid}",
			Params:      []Param{uuidParam("project"), envName},
		},
	}
}

func privateKeyRoutes() []Route {
	return []Route{
		{
			Name:        "coolify_list_private_keys",
			Description: "List all SSH private keys.",
			Method:      http.MethodGet,
			Path:        "/security/keys",
		},
		{
			Name:        "coolify_get_private_key",
			Description: "Get an SSH private key by UUID.",
			Method:      http.MethodGet,
			Path:        "/security/keys/{uuid}",
			Params:      []Param{uuidParam("private key")},
		},
		{
			Name:        "coolify_create_private_key",
			Description: "Store a new SSH private key.",
			Method:      http.MethodPost,
			Path:        "/security/keys",
			Params: []Param{
				requiredField("private_key", TypeString, "PEM-encoded private key"),
				field("name", TypeString, "Key name"),
				field("description", TypeString, "Key description"),
			},
			Passthrough: true,
		},
		{
			Name:        "coolify_update_private_key",
			Description: "Update an SSH private key. The key UUID is sent in the body.",
			Method:      http.MethodPatch,
			Path:        "/security/keys",
			Params: []Param{
				requiredField("uuid", TypeString, "UUID of the private key"),
				field("private_key", TypeString, "PEM-encoded private key"),
				field("name", TypeString, "Key name"),
				field("description", TypeString, "Key description"),
			},
			Passthrough: true,
		},
		{
			Name:        "coolify_delete_private_key",
			Description: "Delete an SSH private key.",
			Method:      http.MethodDelete,
			Path:        "/security/keys/{uuid}",
			Params:      []Param{uuidParam("private key")},
		},
	}
}
