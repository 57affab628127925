package lambda

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

const contentTypeJSON = "application/json"

// Request represents a generic HTTP request for serverless functions.
// Body keeps the raw JSON of the trigger's body field and is nil when absent.
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        json.RawMessage   `json:"body"`
	PathParams  map[string]string `json:"path_params"`
	RequestID   string            `json:"request_id"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(req *Request) (*Response, error)

// Event is an API Gateway proxy event whose body may arrive either as a
// string or as an already decoded JSON value.
type Event struct {
	Resource              string                               `json:"resource"`
	Path                  string                               `json:"path"`
	HTTPMethod            string                               `json:"httpMethod"`
	Headers               map[string]string                    `json:"headers"`
	QueryStringParameters map[string]string                    `json:"queryStringParameters"`
	PathParameters        map[string]string                    `json:"pathParameters"`
	Body                  json.RawMessage                      `json:"body,omitempty"`
	IsBase64Encoded       bool                                 `json:"isBase64Encoded,omitempty"`
	RequestContext        events.APIGatewayProxyRequestContext `json:"requestContext"`
}

// ToRequest converts the event into the generic request
func (e Event) ToRequest() *Request {
	var body json.RawMessage
	if len(e.Body) > 0 {
		body = e.Body
	}

	return &Request{
		Method:      e.HTTPMethod,
		Path:        e.Path,
		Headers:     e.Headers,
		QueryParams: e.QueryStringParameters,
		Body:        body,
		PathParams:  e.PathParameters,
		RequestID:   e.RequestContext.RequestID,
	}
}

// FromProxyRequest converts the aws-lambda-go proxy request, whose body is
// always text, into the generic request.
func FromProxyRequest(event events.APIGatewayProxyRequest) *Request {
	var body json.RawMessage
	if event.Body != "" {
		body = json.RawMessage(event.Body)
	}

	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
		PathParams:  event.PathParameters,
		RequestID:   event.RequestContext.RequestID,
	}
}

// PathParam returns the named path parameter or "" when it is missing
func (r *Request) PathParam(name string) string {
	if r == nil || r.PathParams == nil {
		return ""
	}
	return r.PathParams[name]
}

// NewJSONResponse marshals v into a JSON response with the given status
func NewJSONResponse(statusCode int, v any) *Response {
	body, err := json.Marshal(v)
	if err != nil {
		return &Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": contentTypeJSON},
			Body:       []byte(`{"error":"Failed to marshal response"}`),
		}
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       body,
	}
}

// ToProxyResponse converts the response into the API Gateway proxy shape
func (r *Response) ToProxyResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}
