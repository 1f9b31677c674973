package cache

import (
	"context"
	"strings"
	"testing"

	"isp-dashboard/pkg/encrypter"
	"isp-dashboard/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T) (Cache, *MemoryStore) {
	t.Helper()
	enc, err := encrypter.NewDerived("secret", "cache")
	require.NoError(t, err)
	store := NewMemoryStore()
	return New(log.NewNop(), store, enc, Config{Miss: ErrMemoryMiss}), store
}

func TestEntity(t *testing.T) {
	ctx := context.Background()
	c, store := newTestCache(t)

	var got item
	assert.False(t, c.GetEntity(ctx, "org-1", "ISPPackage", "p1", &got))

	c.SetEntity(ctx, "org-1", "ISPPackage", "p1", item{ID: "p1", Name: "Basic"})
	require.True(t, c.GetEntity(ctx, "org-1", "ISPPackage", "p1", &got))
	assert.Equal(t, "Basic", got.Name)

	raw, err := store.Get(ctx, EntityKey("org-1", "ISPPackage", "p1"))
	require.NoError(t, err)
	assert.False(t, strings.Contains(raw, "Basic"), "stored value must be encrypted")

	c.Evict(ctx, "org-1", "ISPPackage", "p1")
	assert.False(t, c.GetEntity(ctx, "org-1", "ISPPackage", "p1", &got))
}

func TestEntityScopedToOrganization(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	c.SetEntity(ctx, "org-b", "ISPPackage", "p1", item{ID: "p1", Name: "B only"})

	var got item
	assert.False(t, c.GetEntity(ctx, "org-a", "ISPPackage", "p1", &got))
	assert.Empty(t, got.Name)
	assert.True(t, c.GetEntity(ctx, "org-b", "ISPPackage", "p1", &got))
}

func TestGC(t *testing.T) {
	ctx := context.Background()
	c, store := newTestCache(t)

	c.SetList(ctx, "org-1", "ISPPackage", "page=1", []item{{ID: "p1"}})
	c.SetList(ctx, "org-1", "ISPPackage", "page=2", []item{{ID: "p2"}})
	c.SetList(ctx, "org-2", "ISPPackage", "page=1", []item{{ID: "p9"}})

	var rows []item
	require.True(t, c.GetList(ctx, "org-1", "ISPPackage", "page=1", &rows))
	assert.Equal(t, []item{{ID: "p1"}}, rows)

	c.GC(ctx, "org-1", "ISPPackage")

	assert.False(t, c.GetList(ctx, "org-1", "ISPPackage", "page=1", &rows))
	assert.False(t, c.GetList(ctx, "org-1", "ISPPackage", "page=2", &rows))
	assert.True(t, store.Has(ListKey("org-2", "ISPPackage", "page=1")))
}

func TestListKey(t *testing.T) {
	a := ListKey("org", "ISPCustomer", "page=1&size=10")
	b := ListKey("org", "ISPCustomer", "page=2&size=10")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "list:org:ISPCustomer:"))
	assert.Len(t, strings.TrimPrefix(a, "list:org:ISPCustomer:"), filterHashLength)
	assert.Equal(t, "entity:org-1:ISPCustomer:c1", EntityKey("org-1", "ISPCustomer", "c1"))
	assert.Equal(t, "lists:org:ISPCustomer", ListIndexKey("org", "ISPCustomer"))
}

func TestNop(t *testing.T) {
	c := NewNop()
	c.SetEntity(context.Background(), "o", "X", "1", item{})
	var got item
	assert.False(t, c.GetEntity(context.Background(), "o", "X", "1", &got))
}
