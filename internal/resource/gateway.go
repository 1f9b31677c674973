package resource

import (
	"context"
	"encoding/json"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"

	"github.com/friendsofgo/errors"
)

type connection[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
}

// List fetches one page. extra is merged into the filter variables.
func (g *Gateway[T]) List(ctx context.Context, orgID string, filter paginator.FilterOptions, extra map[string]any) graphql.Result[paginator.Page[T]] {
	if g.desc.List.Query == "" {
		return graphql.Failure[paginator.Page[T]](ErrUnsupported)
	}

	key := filter.Key() + extraKey(extra)
	var page paginator.Page[T]
	if g.cache.GetList(ctx, orgID, g.desc.Typename, key, &page) {
		return graphql.Success(page)
	}

	req := graphql.NewRequest(g.desc.List.Operation, g.desc.List.Query).
		Vars(filter.Variables(orgID)).
		Vars(extra)

	var conn connection[T]
	if err := g.run(ctx, req, g.desc.List.Field, &conn); err != nil {
		return graphql.Failure[paginator.Page[T]](err)
	}

	page = paginator.Page[T]{Rows: conn.Items, TotalCount: conn.TotalCount}
	if page.Rows == nil {
		page.Rows = []T{}
	}
	g.cache.SetList(ctx, orgID, g.desc.Typename, key, page)

	return graphql.Success(page)
}

// Detail fetches one entity by id.
func (g *Gateway[T]) Detail(ctx context.Context, orgID, id string) graphql.Result[T] {
	if g.desc.Detail.Query == "" {
		return graphql.Failure[T](ErrUnsupported)
	}

	var v T
	if !g.desc.NoCache && g.cache.GetEntity(ctx, orgID, g.desc.Typename, id, &v) {
		return graphql.Success(v)
	}

	req := graphql.NewRequest(g.desc.Detail.Operation, g.desc.Detail.Query).
		Var("organizationId", orgID).
		Var("id", id)
	if err := g.run(ctx, req, g.desc.Detail.Field, &v); err != nil {
		return graphql.Failure[T](err)
	}

	if !g.desc.NoCache {
		g.cache.SetEntity(ctx, orgID, g.desc.Typename, id, v)
	}
	return graphql.Success(v)
}

// Create sends input as the mutation's input variable.
func (g *Gateway[T]) Create(ctx context.Context, orgID string, input any) graphql.Result[T] {
	if g.desc.Create.Query == "" {
		return graphql.Failure[T](ErrUnsupported)
	}

	req := graphql.NewRequest(g.desc.Create.Operation, g.desc.Create.Query).
		Var("input", input)

	var v T
	if err := g.run(ctx, req, g.desc.Create.Field, &v); err != nil {
		return graphql.Failure[T](err)
	}

	g.written(ctx, orgID, v, model.ChangeCreated)
	return graphql.Success(v)
}

// Update replaces the entity with input in full.
func (g *Gateway[T]) Update(ctx context.Context, orgID, id string, input any) graphql.Result[T] {
	if g.desc.Update.Query == "" {
		return graphql.Failure[T](ErrUnsupported)
	}

	req := graphql.NewRequest(g.desc.Update.Operation, g.desc.Update.Query).
		Var("id", id).
		Var("input", input)

	var v T
	if err := g.run(ctx, req, g.desc.Update.Field, &v); err != nil {
		return graphql.Failure[T](err)
	}

	g.written(ctx, orgID, v, model.ChangeUpdated)
	return graphql.Success(v)
}

// Delete removes the entity. The cache is only touched once the API confirms.
func (g *Gateway[T]) Delete(ctx context.Context, orgID, id string) graphql.Result[bool] {
	if g.desc.Delete.Query == "" {
		return graphql.Failure[bool](ErrUnsupported)
	}

	req := graphql.NewRequest(g.desc.Delete.Operation, g.desc.Delete.Query).
		Var("organizationId", orgID).
		Var("id", id)

	var ack json.RawMessage
	if err := g.run(ctx, req, g.desc.Delete.Field, &ack); err != nil {
		return graphql.Failure[bool](err)
	}

	g.cache.Evict(ctx, orgID, g.desc.Typename, id)
	g.cache.GC(ctx, orgID, g.desc.Typename)
	g.publish(ctx, orgID, id, model.ChangeDeleted)

	return graphql.Success(true)
}

// Invalidate drops cached lists and announces a change made by a custom mutation.
func (g *Gateway[T]) Invalidate(ctx context.Context, orgID, id string, action model.ChangeAction) {
	if id != "" {
		g.cache.Evict(ctx, orgID, g.desc.Typename, id)
	}
	g.cache.GC(ctx, orgID, g.desc.Typename)
	g.publish(ctx, orgID, id, action)
}

func (g *Gateway[T]) written(ctx context.Context, orgID string, v T, action model.ChangeAction) {
	var id string
	if g.desc.ID != nil {
		id = g.desc.ID(v)
	}
	if !g.desc.NoCache {
		g.cache.SetEntity(ctx, orgID, g.desc.Typename, id, v)
	}
	g.cache.GC(ctx, orgID, g.desc.Typename)
	g.publish(ctx, orgID, id, action)
}

func (g *Gateway[T]) publish(ctx context.Context, orgID, id string, action model.ChangeAction) {
	event := model.ChangeEvent{
		OrganizationID: orgID,
		Typename:       g.desc.Typename,
		ID:             id,
		Action:         action,
		At:             g.clock(),
	}
	if err := g.pub.Publish(ctx, event); err != nil {
		g.l.Warnf(ctx, "internal.resource.publish.Publish: %v", err)
	}
}

func (g *Gateway[T]) run(ctx context.Context, req *graphql.Request, field string, dst any) error {
	var data map[string]json.RawMessage
	if err := g.gql.Run(ctx, req, &data); err != nil {
		return err
	}

	raw, ok := data[field]
	if !ok || string(raw) == "null" {
		return errors.Wrap(ErrMissingData, req.Operation)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		g.l.Errorf(ctx, "internal.resource.run.Unmarshal: %v", err)
		return errors.Wrap(err, req.Operation)
	}

	return nil
}
