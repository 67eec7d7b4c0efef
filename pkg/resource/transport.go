package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Op names an operation in error messages and logs.
type Op string

const (
	OpList   Op = "list"
	OpGet    Op = "get"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

func (o Op) verb() string {
	switch o {
	case OpList, OpGet:
		return "fetch"
	default:
		return string(o)
	}
}

func (o Op) target(names Names) string {
	switch o {
	case OpList:
		return names.Plural
	case OpGet, OpCreate, OpUpdate, OpDelete:
		return names.Singular
	default:
		return ""
	}
}

// describe renders "fetch attractions", "update carousel item". Custom ops
// are expected to carry their own object, e.g. "toggle checklist item".
func (o Op) describe(names Names) string {
	return strings.TrimSpace(o.verb() + " " + o.target(names))
}

// Names are the human readable names of a resource.
type Names struct {
	Singular string
	Plural   string
}

const cacheBustParam = "_t"

// Query narrows a list request.
type Query struct {
	Params url.Values
	// BypassCache skips every cache layer: the shared read cache and any
	// HTTP cache between the client and the backend.
	BypassCache bool
}

// Transport maps the five CRUD operations of one resource onto HTTP.
type Transport[R any] struct {
	client       *Client
	path         string
	names        Names
	updateMethod string
}

type TransportOption func(*transportOptions)

type transportOptions struct {
	updateMethod string
}

// WithUpdateMethod selects the verb used for updates. Defaults to PUT.
func WithUpdateMethod(method string) TransportOption {
	return func(o *transportOptions) {
		o.updateMethod = method
	}
}

func NewTransport[R any](client *Client, path string, names Names, opts ...TransportOption) *Transport[R] {
	options := transportOptions{updateMethod: http.MethodPut}
	for _, opt := range opts {
		opt(&options)
	}

	return &Transport[R]{
		client:       client,
		path:         "/" + strings.Trim(path, "/"),
		names:        names,
		updateMethod: options.updateMethod,
	}
}

func (t *Transport[R]) Path() string {
	return t.path
}

func (t *Transport[R]) Names() Names {
	return t.names
}

// GetAll returns the whole collection. A null body yields an empty slice.
func (t *Transport[R]) GetAll(ctx context.Context, q Query) ([]R, error) {
	var items []R
	if err := t.read(ctx, OpList, t.path, q.Params, q.BypassCache, t.listKey(q.Params), &items); err != nil {
		return nil, err
	}

	if items == nil {
		items = []R{}
	}

	return items, nil
}

type GetOption func(*getOptions)

type getOptions struct {
	bypassCache bool
}

func WithBypassCache() GetOption {
	return func(o *getOptions) {
		o.bypassCache = true
	}
}

func (t *Transport[R]) GetByID(ctx context.Context, id int64, opts ...GetOption) (R, error) {
	var options getOptions
	for _, opt := range opts {
		opt(&options)
	}

	var item R
	if err := t.read(ctx, OpGet, t.memberPath(id), nil, options.bypassCache, t.itemKey(id), &item); err != nil {
		var zero R
		return zero, err
	}

	return item, nil
}

func (t *Transport[R]) Create(ctx context.Context, p Payload) (R, error) {
	var item R
	if err := t.write(ctx, OpCreate, http.MethodPost, t.path, p, &item); err != nil {
		var zero R
		return zero, err
	}

	return item, nil
}

func (t *Transport[R]) Update(ctx context.Context, id int64, p Payload) (R, error) {
	var item R
	if err := t.write(ctx, OpUpdate, t.updateMethod, t.memberPath(id), p, &item); err != nil {
		var zero R
		return zero, err
	}

	return item, nil
}

// Delete succeeds on any 2xx, with or without a body.
func (t *Transport[R]) Delete(ctx context.Context, id int64) error {
	return t.write(ctx, OpDelete, http.MethodDelete, t.memberPath(id), nil, nil)
}

// Action calls a non-CRUD endpoint below the resource path, e.g.
// "PATCH /checklist/7/toggle" or "GET /checklist/stats". Non-GET actions
// invalidate the shared cache of the resource on success. out may be nil.
func (t *Transport[R]) Action(ctx context.Context, op Op, method, subpath string, p Payload, out any) error {
	return t.write(ctx, op, method, t.path+"/"+strings.TrimLeft(subpath, "/"), p, out)
}

func (t *Transport[R]) read(
	ctx context.Context,
	op Op,
	path string,
	params url.Values,
	bypass bool,
	key string,
	out any,
) error {
	if !bypass {
		if data, ok := t.client.cacheGet(ctx, key); ok {
			if err := json.Unmarshal(data, out); err == nil {
				t.client.logger.Debug("served from cache", zap.String("key", key))
				return nil
			}
		}
	}

	generation := t.client.cacheGeneration(t.cachePrefix())

	query := url.Values{}
	for k, v := range params {
		query[k] = append([]string(nil), v...)
	}
	if bypass {
		query.Set(cacheBustParam, strconv.FormatInt(time.Now().UnixMilli(), 10))
	}

	status, body, err := t.client.send(ctx, call{
		op:       op,
		resource: t.path,
		method:   http.MethodGet,
		path:     path,
		query:    query,
		noCache:  bypass,
	})
	if err := t.check(op, status, body, err); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return newError(ErrServerError, op, t.names, status, "malformed response body", err)
	}

	t.client.cacheSet(ctx, t.cachePrefix(), generation, key, body)

	return nil
}

func (t *Transport[R]) write(ctx context.Context, op Op, method, path string, p Payload, out any) error {
	cl := call{
		op:       op,
		resource: t.path,
		method:   method,
		path:     path,
	}

	if p != nil {
		body, contentType, err := encodePayload(p)
		if err != nil {
			return newError(ErrInvalidInput, op, t.names, 0, err.Error(), err)
		}
		cl.body = body
		cl.contentType = contentType
	}

	status, body, err := t.client.send(ctx, cl)
	if err := t.check(op, status, body, err); err != nil {
		return err
	}

	if method != http.MethodGet {
		t.client.cacheInvalidate(ctx, t.cachePrefix())
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return newError(ErrServerError, op, t.names, status, "malformed response body", err)
	}

	return nil
}

func (t *Transport[R]) check(op Op, status int, body []byte, sendErr error) error {
	if sendErr != nil {
		return newError(ErrNotReachable, op, t.names, 0, "", sendErr)
	}

	kind := kindOf(status)
	if kind == nil {
		return nil
	}

	err := newError(kind, op, t.names, status, serverMessage(body), nil)
	if status >= http.StatusInternalServerError {
		t.client.logger.Error("backend rejected request",
			zap.String("resource", t.path),
			zap.String("op", string(op)),
			zap.Int("status", status),
			zap.Error(err),
		)
	} else {
		t.client.logger.Warn("backend rejected request",
			zap.String("resource", t.path),
			zap.String("op", string(op)),
			zap.Int("status", status),
			zap.Error(err),
		)
	}

	return err
}

func (t *Transport[R]) memberPath(id int64) string {
	return t.path + "/" + strconv.FormatInt(id, 10)
}

func (t *Transport[R]) cachePrefix() string {
	return strings.TrimPrefix(t.path, "/") + ":"
}

func (t *Transport[R]) listKey(params url.Values) string {
	return t.cachePrefix() + "list:" + params.Encode()
}

func (t *Transport[R]) itemKey(id int64) string {
	return t.cachePrefix() + "item:" + strconv.FormatInt(id, 10)
}

const maxDetailLen = 200

// serverMessage extracts the human readable detail of an error response.
// NestJS style bodies carry "message" as a string or a list of strings.
func serverMessage(body []byte) string {
	var envelope struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		if len(envelope.Message) > 0 {
			var text string
			if err := json.Unmarshal(envelope.Message, &text); err == nil && text != "" {
				return text
			}

			var list []string
			if err := json.Unmarshal(envelope.Message, &list); err == nil && len(list) > 0 {
				return strings.Join(list, "; ")
			}
		}

		if envelope.Error != "" {
			return envelope.Error
		}
	}

	return truncate(strings.TrimSpace(string(body)), maxDetailLen)
}

// truncate cuts text to at most n bytes on a rune boundary.
func truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}

	cut := 0
	for i := range text {
		if i > n {
			break
		}
		cut = i
	}

	return text[:cut] + "..."
}
