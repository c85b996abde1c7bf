// Package tools maps MCP tool invocations onto Coolify REST requests.
//
// Each tool is a Route: an HTTP method, a path template, and a list of
// parameters saying where each argument goes (path segment, query string or
// JSON body). Routes are static and built once at startup.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidArguments is wrapped by every request-building failure.
var ErrInvalidArguments = errors.New("invalid arguments")

// ParamType is the JSON-Schema type advertised for a parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
	TypeArray   ParamType = "array"
	TypeObject  ParamType = "object"
)

// ParamIn says where an argument is placed in the outgoing request.
type ParamIn string

const (
	InPath  ParamIn = "path"
	InQuery ParamIn = "query"
	InBody  ParamIn = "body"
)

// Param describes one tool argument.
type Param struct {
	Name        string
	Type        ParamType
	Items       ParamType // element type for arrays
	Description string
	Required    bool
	In          ParamIn
	Key         string // wire name when it differs from Name
}

// wireName returns the name used in the query string or body.
func (p Param) wireName() string {
	if p.Key != "" {
		return p.Key
	}
	return p.Name
}

// Route is the immutable descriptor of one tool.
type Route struct {
	Name        string
	Description string
	Method      string
	Path        string
	Params      []Param
	// Passthrough forwards every argument not consumed by the path or query
	// string as the JSON body, applying Key renames.
	Passthrough bool
}

// RequestSpec is the single backend request derived from one invocation.
type RequestSpec struct {
	Path   string
	Method string
	Body   any
}

// Build derives the request for the given arguments. It fails only when a
// path parameter is missing or cannot be rendered as a path segment.
func (r Route) Build(args map[string]any) (RequestSpec, error) {
	path := r.Path
	consumed := make(map[string]bool, len(r.Params))
	renames := map[string]string{}
	var query []string
	body := map[string]any{}

	for _, p := range r.Params {
		v, ok := args[p.Name]
		switch p.In {
		case InPath:
			consumed[p.Name] = true
			seg, err := pathSegment(v, ok)
			if err != nil {
				return RequestSpec{}, fmt.Errorf("%w: %s %v", ErrInvalidArguments, p.Name, err)
			}
			path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(seg))
		case InQuery:
			consumed[p.Name] = true
			if s, truthy := queryValue(v); ok && truthy {
				query = append(query, url.QueryEscape(p.wireName())+"="+url.QueryEscape(s))
			}
		case InBody:
			if r.Passthrough {
				if p.Key != "" {
					renames[p.Name] = p.Key
				}
				continue
			}
			consumed[p.Name] = true
			if ok && v != nil {
				body[p.wireName()] = v
			}
		}
	}

	if r.Passthrough {
		// Verbatim fields first so a renamed field wins on collision.
		for k, v := range args {
			if consumed[k] {
				continue
			}
			if _, renamed := renames[k]; renamed {
				continue
			}
			body[k] = v
		}
		for from, to := range renames {
			if v, ok := args[from]; ok {
				body[to] = v
			}
		}
	}

	if len(query) > 0 {
		path += "?" + strings.Join(query, "&")
	}

	// Passthrough routes always forward the remainder, even when empty.
	spec := RequestSpec{Path: path, Method: r.Method}
	if r.Passthrough || len(body) > 0 {
		spec.Body = body
	}
	return spec, nil
}

// pathSegment renders a scalar argument for substitution into the path.
func pathSegment(v any, present bool) (string, error) {
	if !present || v == nil {
		return "", errors.New("is required")
	}
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	case json.Number:
		s = val.String()
	case bool:
		s = strconv.FormatBool(val)
	default:
		return "", fmt.Errorf("must be a string or number, got %T", v)
	}
	if s == "" {
		return "", errors.New("is required")
	}
	return s, nil
}

// queryValue renders a query argument and reports whether it is truthy.
// false, 0, "" and nil are omitted from the query string.
func queryValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case bool:
		return "true", val
	case string:
		return val, val != ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), val != 0
	case int:
		return strconv.Itoa(val), val != 0
	case int64:
		return strconv.FormatInt(val, 10), val != 0
	case json.Number:
		f, err := val.Float64()
		return val.String(), err == nil && f != 0
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return "", false
		}
		return string(data), true
	}
}
