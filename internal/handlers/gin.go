package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"items-api/internal/middleware"
	"items-api/pkg/lambda"
)

// LambdaFunc is the shape shared by the ItemHandler operations
type LambdaFunc func(ctx context.Context, req *lambda.Request) (*lambda.Response, error)

// Gin serves fn on a gin route by translating the gin context into a
// generic request
func Gin(fn LambdaFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := requestFromGin(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
			return
		}

		resp, err := fn(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}

		for key, value := range resp.Headers {
			c.Header(key, value)
		}
		c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
	}
}

func requestFromGin(c *gin.Context) (*lambda.Request, error) {
	var body json.RawMessage
	if c.Request.Body != nil {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			body = raw
		}
	}

	headers := make(map[string]string, len(c.Request.Header))
	for key := range c.Request.Header {
		headers[key] = c.GetHeader(key)
	}

	query := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	params := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}

	return &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        body,
		PathParams:  params,
		RequestID:   c.GetString(middleware.RequestIDKey),
	}, nil
}
