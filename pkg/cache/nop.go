package cache

import "context"

type nopCache struct{}

func (nopCache) GetEntity(context.Context, string, string, string, any) bool { return false }
func (nopCache) SetEntity(context.Context, string, string, string, any)      {}
func (nopCache) GetList(context.Context, string, string, string, any) bool   { return false }
func (nopCache) SetList(context.Context, string, string, string, any)        {}
func (nopCache) Evict(context.Context, string, string, string)               {}
func (nopCache) GC(context.Context, string, string)                          {}
