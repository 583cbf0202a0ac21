// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	forwardedHostHeaderKey = "x-forwarded-host"
	forwardedForHeaderKey  = "x-forwarded-for"
	requestIDHeaderName    = "x-request-id"

	IncomingRequestMessage  = "incoming request"
	RequestCompletedMessage = "request completed"
)

type fiberLoggingContext struct {
	c          *fiber.Ctx
	handlerErr error
}

type loggingContext interface {
	Request() requestLoggingContext
	Response() responseLoggingContext
}

type requestLoggingContext interface {
	GetHeader(string) string
	URI() string
	Host() string
	Method() string
}

type responseLoggingContext interface {
	BodySize() int
	StatusCode() int
}

func removePort(host string) string {
	return strings.Split(host, ":")[0]
}

func GetReqID(ctx loggingContext) string {
	if requestID := ctx.Request().GetHeader(requestIDHeaderName); requestID != "" {
		return requestID
	}
	// Generate a random uuid string. e.g. 16c9c1f2-c001-40d3-bbfe-48857367e7b5
	requestID, err := uuid.NewRandom()
	if err != nil {
		panic(fmt.Errorf("error generating request id: %w", err))
	}
	return requestID.String()
}

func requestFields(ctx loggingContext) []any {
	fields := []any{
		"method", ctx.Request().Method(),
		"path", ctx.Request().URI(),
		"host", removePort(ctx.Request().Host()),
	}
	if forwardedHost := ctx.Request().GetHeader(forwardedHostHeaderKey); forwardedHost != "" {
		fields = append(fields, "forwarded_host", forwardedHost)
	}
	if ip := ctx.Request().GetHeader(forwardedForHeaderKey); ip != "" {
		fields = append(fields, "ip", ip)
	}
	return fields
}

func logIncomingRequest(ctx loggingContext, component *Component) {
	component.Step(IncomingRequestMessage, requestFields(ctx)...)
}

func logRequestCompleted(ctx loggingContext, component *Component, startTime time.Time) {
	fields := append(requestFields(ctx),
		"status", ctx.Response().StatusCode(),
		"bytes", ctx.Response().BodySize(),
		"response_time_ms", time.Since(startTime).Milliseconds(),
	)
	component.Info(RequestCompletedMessage, fields...)
}

func (flc *fiberLoggingContext) Request() requestLoggingContext {
	return flc
}

func (flc *fiberLoggingContext) Response() responseLoggingContext {
	return flc
}

func (flc *fiberLoggingContext) GetHeader(key string) string {
	return flc.c.Get(key, "")
}

func (flc *fiberLoggingContext) URI() string {
	return string(flc.c.Request().URI().RequestURI())
}

func (flc *fiberLoggingContext) Host() string {
	return string(flc.c.Request().Host())
}

func (flc *fiberLoggingContext) Method() string {
	return flc.c.Method()
}

func (flc fiberLoggingContext) getFiberError() *fiber.Error {
	if fiberErr, ok := flc.handlerErr.(*fiber.Error); flc.handlerErr != nil && ok {
		return fiberErr
	}
	return nil
}

func (flc *fiberLoggingContext) setError(err error) {
	flc.handlerErr = err
}

func (flc *fiberLoggingContext) BodySize() int {
	if fiberErr := flc.getFiberError(); fiberErr != nil {
		return len(fiberErr.Error())
	}

	if content := flc.c.GetRespHeader("Content-Length"); content != "" {
		if length, err := strconv.Atoi(content); err == nil {
			return length
		}
	}
	return len(flc.c.Response().Body())
}

func (flc *fiberLoggingContext) StatusCode() int {
	if fiberErr := flc.getFiberError(); fiberErr != nil {
		return fiberErr.Code
	}

	return flc.c.Response().StatusCode()
}

// RequestMiddleware is a fiber middleware writing one STEP line when a request comes in and
// one INFO line when it completes, both through component and tagged with the request id.
// The request scoped component, carrying the request id, and its sink are stored in the
// request user context.
func RequestMiddleware(component *Component, excludedPrefix []string) func(*fiber.Ctx) error {
	return func(fiberCtx *fiber.Ctx) error {
		fiberLoggingContext := &fiberLoggingContext{c: fiberCtx}

		for _, prefix := range excludedPrefix {
			if strings.HasPrefix(fiberLoggingContext.Request().URI(), prefix) {
				return fiberCtx.Next()
			}
		}

		start := time.Now()

		requestComponent := component.With("request_id", GetReqID(fiberLoggingContext))
		ctx := WithSink(fiberCtx.UserContext(), requestComponent.sink)
		fiberCtx.SetUserContext(WithComponent(ctx, requestComponent))

		logIncomingRequest(fiberLoggingContext, requestComponent)
		err := fiberCtx.Next()
		fiberLoggingContext.setError(err)

		logRequestCompleted(fiberLoggingContext, requestComponent, start)

		return err
	}
}
