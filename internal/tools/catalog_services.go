package tools

import "net/http"

func serviceRoutes() []Route {
	svc := uuidParam("service")
	return []Route{
		{
			Name:        "coolify_list_services",
			Description: "List all services.",
			Method:      http.MethodGet,
			Path:        "/services",
		},
		{
			Name:        "coolify_get_service",
			Description: "Get a service by UUID.",
			Method:      http.MethodGet,
			Path:        "/services/{uuid}",
			Params:      []Param{svc},
		},
		{
			Name:        "coolify_create_service",
			Description: "Create a one-click service (e.g. 'plausible', 'n8n') or a custom compose service.",
			Method:      http.MethodPost,
			Path:        "/services",
			Params: concat(placementFields(), []Param{
				field("type", TypeString, "One-click service type"),
				field("docker_compose_raw", TypeString, "Compose file contents for a custom service"),
			}),
			Passthrough: true,
		},
		{
			Name:        "coolify_update_service",
			Description: "Update a service's settings.",
			Method:      http.MethodPatch,
			Path:        "/services/{uuid}",
			Params: []Param{
				svc,
				field("name", TypeString, "Service name"),
				field("description", TypeString, "Service description"),
				field("docker_compose_raw", TypeString, "Compose file contents"),
			},
			Passthrough: true,
		},
		{
			Name:        "coolify_delete_service",
			Description: "Delete a service. Optional flags control cleanup of volumes, configuration and networks.",
			Method:      http.MethodDelete,
			Path:        "/services/{uuid}",
			Params:      concat([]Param{svc}, deleteFlags()),
		},
		{
			Name:        "coolify_start_service",
			Description: "Start a service.",
			Method:      http.MethodGet,
			Path:        "/services/{uuid}/start",
			Params:      []Param{svc},
		},
		{
			Name:        "coolify_stop_service",
			Description: "Stop a service.",
			Method:      http.MethodGet,
			Path:        "/services/{uuid}/stop",
			Params:      []Param{svc},
		},
		{
			Name:        "coolify_restart_service",
			Description: "Restart a service.",
			Method:      http.MethodGet,
			Path:        "/services/{uuid}/restart",
			Params:      []Param{svc},
		},
		{
			Name:        "coolify_list_service_envs",
			Description: "List the environment variables of a service.",
			Method:      http.MethodGet,
			Path:        "/services/{uuid}/envs",
			Params:      []Param{svc},
		},
		{
			Name:        "coolify_create_service_env",
			Description: "Create an environment variable on a service.",
			Method:      http.MethodPost,
			Path:        "/services/{uuid}/envs",
			Params: concat([]Param{
				svc,
				requiredField("key", TypeString, "Variable name"),
				requiredField("value", TypeString, "Variable value"),
			}, envFields()),
			Passthrough: true,
		},
		{
			Name:        "coolify_update_service_env",
			Description: "Update an environment variable of a service.",
			Method:      http.MethodPatch,
			Path:        "/services/{uuid}/envs",
			Params: concat([]Param{
				svc,
				{Name: "env_uuid", Type: TypeString, Description: "UUID of the environment variable", Required: true, In: InBody, Key: "uuid"},
				field("key", TypeString, "Variable name"),
				field("value", TypeString, "Variable value"),
			}, envFields()),
			Passthrough: true,
		},
		{
			Name:        "coolify_update_service_envs_bulk",
			Description: "Create or update several environment variables of a service at once.",
			Method:      http.MethodPatch,
			Path:        "/services/{uuid}/envs/bulk",
			Params: []Param{
				svc,
				{Name: "data", Type: TypeArray, Items: TypeObject, Description: "Variables as objects with key, value and optional flags", Required: true, In: InBody},
			},
			Passthrough: true,
		},
		{
			Name:        "coolify_delete_service_env",
			Description: "Delete an environment variable of a service.",
			Method:      http.MethodDelete,
			Path:        "/services/{uuid}/envs/{env_uuid}",
			Params: []Param{
				svc,
				pathParam("env_uuid", "UUID of the environment variable"),
			},
		},
	}
}

func deploymentRoutes() []Route {
	return []Route{
		{
			Name:        "coolify_list_deployments",
			Description: "List deployments that are currently queued or running.",
			Method:      http.MethodGet,
			Path:        "/deployments",
		},
		{
			Name:        "coolify_get_deployment",
			Description: "Get a deployment by UUID, including its build log.",
			Method:      http.MethodGet,
			Path:        "/deployments/{uuid}",
			Params:      []Param{uuidParam("deployment")},
		},
		{
			Name:        "coolify_cancel_deployment",
			Description: "Cancel a queued or running deployment.",
			Method:      http.MethodPost,
			Path:        "/deployments/{uuid}/cancel",
			Params:      []Param{uuidParam("deployment")},
		},
		{
			Name:        "coolify_deploy",
			Description: "Deploy resources by UUID or by tag. Pass comma-separated values to deploy several at once.",
			Method:      http.MethodGet,
			Path:        "/deploy",
			Params: []Param{
				queryParam("uuid", TypeString, "Comma-separated resource UUIDs"),
				queryParam("tag", TypeString, "Comma-separated tag names"),
				queryParam("force", TypeBoolean, "Force a rebuild without cache"),
				queryParam("pr", TypeNumber, "Pull request ID to deploy as a preview"),
			},
		},
	}
}
