// Package admin holds the declarative back-office resource registry: each
// entity screen is described once at startup, and the route table is derived
// from it. A resource with no Delete handler simply has no delete route, so
// orders cannot be deleted and contact messages cannot be created through
// the back office.
package admin

import "github.com/gin-gonic/gin"

// BulkAction is a named POST action over a selection of rows, e.g. marking
// products inactive or moving orders to a new status.
type BulkAction struct {
	Name      string
	SuperOnly bool
	Handler   gin.HandlerFunc
}

// Resource maps one entity to the operations the back office exposes for
// it. Nil handlers mean the operation is not allowed.
type Resource struct {
	Name        string
	List        gin.HandlerFunc
	Get         gin.HandlerFunc
	Create      gin.HandlerFunc
	Update      gin.HandlerFunc
	Delete      gin.HandlerFunc
	BulkActions []BulkAction
}

type Registry struct {
	resources []Resource
}

func NewRegistry(resources ...Resource) *Registry {
	return &Registry{resources: resources}
}

func (r *Registry) Resources() []Resource {
	return r.resources
}

// RegisterRoutes wires every registered resource into the router group.
// Create/update/delete and super-only bulk actions go through the superOnly
// middleware; list, get and regular bulk actions are open to any
// authenticated admin.
func (r *Registry) RegisterRoutes(rg *gin.RouterGroup, superOnly gin.HandlerFunc) {
	for _, res := range r.resources {
		base := "/" + res.Name
		if res.List != nil {
			rg.GET(base, res.List)
		}
		if res.Get != nil {
			rg.GET(base+"/:id", res.Get)
		}
		if res.Create != nil {
			rg.POST(base, superOnly, res.Create)
		}
		if res.Update != nil {
			rg.PUT(base+"/:id", superOnly, res.Update)
		}
		if res.Delete != nil {
			rg.DELETE(base+"/:id", superOnly, res.Delete)
		}
		for _, action := range res.BulkActions {
			if action.SuperOnly {
				rg.POST(base+"/"+action.Name, superOnly, action.Handler)
			} else {
				rg.POST(base+"/"+action.Name, action.Handler)
			}
		}
	}
}
