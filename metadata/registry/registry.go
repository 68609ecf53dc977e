package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/efaps/esql/metadata/database"
	"github.com/efaps/esql/metadata/info"
)

var _registry = &registry{
	products: make(map[string]*database.Product),
	dialects: make(map[string]info.Dialects),
}

//RegisterDialect register dialect
func RegisterDialect(dialect *info.Dialect) {
	_registry.RegisterDialect(dialect)
}

//Products access products registry
func Products() map[string]*database.Product {
	return _registry.Products()
}

//LookupDialect lookups dialect
func LookupDialect(product *database.Product) *info.Dialect {
	return _registry.LookupDialect(product)
}

//Dialects returns all registered dialects for supplied product name
func Dialects(productName string) info.Dialects {
	return _registry.Dialects(productName)
}

type registry struct {
	mux      sync.RWMutex
	products map[string]*database.Product
	dialects map[string]info.Dialects
}

func (r *registry) Products() map[string]*database.Product {
	r.mux.RLock()
	defer r.mux.RUnlock()
	var result = make(map[string]*database.Product, len(r.products))
	for k, v := range r.products {
		result[k] = v
	}
	return result
}

func (r *registry) Dialects(productName string) info.Dialects {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.dialects[strings.ToLower(productName)]
}

func (r *registry) LookupDialect(product *database.Product) *info.Dialect {
	if product == nil {
		return nil
	}
	r.mux.RLock()
	dialects, ok := r.dialects[product.Key()]
	r.mux.RUnlock()
	if !ok || len(dialects) == 0 {
		return nil
	}
	var result *info.Dialect
	for _, candidate := range dialects {
		if product.Equal(&candidate.Product) {
			return candidate
		}
		if candidate.Major < product.Major || (candidate.Major == product.Major && candidate.Minor <= product.Minor) {
			result = candidate //dialects are sorted, the last one not above product version wins
		}
	}
	if result == nil {
		return dialects[0]
	}
	return result
}

func (r *registry) RegisterDialect(dialect *info.Dialect) {
	r.mux.Lock()
	defer r.mux.Unlock()
	key := dialect.Key()
	if _, ok := r.products[key]; !ok {
		product := dialect.Product
		r.products[key] = &product
	}
	dialects, ok := r.dialects[key]
	if !ok {
		r.dialects[key] = []*info.Dialect{dialect}
		return
	}
	for _, item := range dialects {
		if item.Product.Equal(&dialect.Product) {
			return
		}
	}
	dialects = append(dialects, dialect)
	sort.Sort(dialects)
	r.dialects[key] = dialects
}
