package tools

import "net/http"

func gitFields() []Param {
	return []Param{
		requiredField("git_repository", TypeString, "Git repository URL or owner/repo"),
		requiredField("git_branch", TypeString, "Git branch"),
		requiredField("build_pack", TypeString, "Build pack: nixpacks, static, dockerfile or dockercompose"),
		requiredField("ports_exposes", TypeString, "Comma-separated ports the application listens on, e.g. '3000'"),
		field("domains", TypeString, "Comma-separated domains, e.g. 'https://app.example.com'"),
	}
}

func applicationRoutes() []Route {
	app := uuidParam("application")
	return []Route{
		{
			Name:        "coolify_list_applications",
			Description: "List all applications, optionally filtered by tag.",
			Method:      http.MethodGet,
			Path:        "/applications",
			Params:      []Param{queryParam("tag", TypeString, "Only list applications with this tag")},
		},
		{
			Name:        "coolify_get_application",
			Description: "Get an application by UUID.",
			Method:      http.MethodGet,
			Path:        "/applications/{uuid}",
			Params:      []Param{app},
		},
		{
			Name:        "coolify_create_public_application",
			Description: "Create an application from a public git repository.",
			Method:      http.MethodPost,
			Path:        "/applications/public",
			Params:      concat(placementFields(), gitFields()),
			Passthrough: true,
		},
		{
			Name:        "coolify_create_private_github_app_application",
			Description: "Create an application from a private repository through a GitHub App.",
			Method:      http.MethodPost,
			Path:        "/applications/private-github-app",
			Params: concat(placementFields(), gitFields(), []Param{
				requiredField("github_app_uuid", TypeString, "UUID of the GitHub App"),
			}),
			Passthrough: true,
		},
		{
			Name:        "coolify_create_private_deploy_key_application",
			Description: "Create an application from a private repository using an SSH deploy key.",
			Method:      http.MethodPost,
			Path:        "/applications/private-deploy-key",
			Params: concat(placementFields(), gitFields(), []Param{
				requiredField("private_key_uuid", TypeString, "UUID of the deploy key"),
			}),
			Passthrough: true,
		},
		{
			Name:        "coolify_create_dockerfile_application",
			Description: "Create an application from a raw Dockerfile.",
			Method:      http.MethodPost,
			Path:        "/applications/dockerfile",
			Params: concat(placementFields(), []Param{
				requiredField("dockerfile", TypeString, "Dockerfile contents"),
				field("ports_exposes", TypeString, "Comma-separated ports the application listens on"),
				field("domains", TypeString, "Comma-separated domains"),
			}),
			Passthrough: true,
		},
		{
			Name:        "coolify_create_docker_image_application",
			Description: "Create an application from a prebuilt docker image.",
			Method:      http.MethodPost,
			Path:        "/applications/dockerimage",
			Params: concat(placementFields(), []Param{
				requiredField("docker_registry_image_name", TypeString, "Image name, e.g. 'nginx'"),
				field("docker_registry_image_tag", TypeString, "Image tag (default: latest)"),
				requiredField("ports_exposes", TypeString, "Comma-separated ports the container listens on"),
				field("domains", TypeString, "Comma-separated domains"),
			}),
			Passthrough: true,
		},
		{
			Name:        "coolify_create_docker_compose_application",
			Description: "Create an application from a docker compose file.",
			Method:      http.MethodPost,
			Path:        "/applications/dockercompose",
			Params: concat(placementFields(), []Param{
				requiredField("docker_compose_raw", TypeString, "docker-compose.yml contents"),
			}),
			Passthrough: true,
		},
		{
			Name:        "coolify_update_application",
			Description: "Update an application's settings. Any application field accepted by Coolify may be passed.",
			Method:      http.MethodPatch,
			Path:        "/applications/{uuid}",
			Params: []Param{
				app,
				field("name", TypeString, "Application name"),
				field("description", TypeString, "Application description"),
				field("domains", TypeString, "Comma-separated domains"),
				field("git_branch", TypeString, "Git branch"),
				field("build_pack", TypeString, "Build pack"),
				field("ports_exposes", TypeString, "Comma-separated exposed ports"),
				field("install_command", TypeString, "Install command"),
				field("build_command", TypeString, "Build command"),
				field("start_command", TypeString, "Start command"),
			},
			Passthrough: true,
		},
		{
			Name:        "coolify_delete_application",
			Description: "Delete an application. Optional flags control cleanup of volumes, configuration and networks.",
			Method:      http.MethodDelete,
			Path:        "/applications/{uuid}",
			Params:      concat([]Param{app}, deleteFlags()),
		},
		{
			Name:        "coolify_get_application_logs",
			Description: "Get the latest container logs of an application.",
			Method:      http.MethodGet,
			Path:        "/applications/{uuid}/logs",
			Params: []Param{
				app,
				queryParam("lines", TypeNumber, "Number of log lines to return (default: 100)"),
			},
		},
		{
			Name:        "coolify_start_application",
			Description: "Start (deploy) an application.",
			Method:      http.MethodGet,
			Path:        "/applications/{uuid}/start",
			Params: []Param{
				app,
				queryParam("force", TypeBoolean, "Force a rebuild without cache"),
				queryParam("instant_deploy", TypeBoolean, "Skip the deployment queue"),
			},
		},
		{
			Name:        "coolify_stop_application",
			Description: "Stop an application.",
			Method:      http.MethodGet,
			Path:        "/applications/{uuid}/stop",
			Params:      []Param{app},
		},
		{
			Name:        "coolify_restart_application",
			Description: "Restart an application.",
			Method:      http.MethodGet,
			Path:        "/applications/{uuid}/restart",
			Params:      []Param{app},
		},
		{
			Name:        "coolify_execute_application_command",
			Description: "Execute a command inside an application's running container.",
			Method:      http.MethodPost,
			Path:        "/applications/{uuid}/execute",
			Params: []Param{
				app,
				requiredField("command", TypeString, "Command to execute"),
			},
			Passthrough: true,
		},
		{
			Name:        "coolify_list_application_envs",
			Description: "List the environment variables of an application.",
			Method:      http.MethodGet,
			Path:        "/applications/{uuid}/envs",
			Params:      []Param{app},
		},
		{
			Name:        "coolify_create_application_env",
			Description: "Create an environment variable on an application.",
			Method:      http.MethodPost,
			Path:        "/applications/{uuid}/envs",
			Params: concat([]Param{
				app,
				requiredField("key", TypeString, "Variable name"),
				requiredField("value", TypeString, "Variable value"),
			}, envFields()),
			Passthrough: true,
		},
		{
			Name:        "coolify_update_application_env",
			Description: "Update an environment variable of an application.",
			Method:      http.MethodPatch,
			Path:        "/applications/{uuid}/envs",
			Params: concat([]Param{
				app,
				{Name: "env_uuid", Type: TypeString, Description: "UUID of the environment variable", Required: true, In: InBody, Key: "uuid"},
				field("key", TypeString, "Variable name"),
				field("value", TypeString, "Variable value"),
			}, envFields()),
			Passthrough: true,
		},
		{
			Name:        "coolify_update_application_envs_bulk",
			Description: "Create or update several environment variables of an application at once.",
			Method:      http.MethodPatch,
			Path:        "/applications/{uuid}/envs/bulk",
			Params: []Param{
				app,
				{Name: "data", Type: TypeArray, Items: TypeObject, Description: "Variables as objects with key, value and optional flags", Required: true, In: InBody},
			},
			Passthrough: true,
		},
		{
			Name:        "coolify_delete_application_env",
			Description: "Delete an environment variable of an application.",
			Method:      http.MethodDelete,
			Path:        "/applications/{uuid}/envs/{env_uuid}",
			Params: []Param{
				app,
				pathParam("env_uuid", "UUID of the environment variable"),
			},
		},
		{
			Name:        "coolify_list_application_deployments",
			Description: "List the deployments of an application, newest first.",
			Method:      http.MethodGet,
			Path:        "/deployments/applications/{uuid}",
			Params: []Param{
				app,
				queryParam("skip", TypeNumber, "Number of deployments to skip"),
				queryParam("take", TypeNumber, "Number of deployments to return (default: 10)"),
			},
		},
	}
}
