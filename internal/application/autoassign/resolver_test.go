package autoassign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Capacitaciones-api/internal/domain/entity"
	"github.com/jhoicas/Capacitaciones-api/pkg/logger"
)

type stubStoreRepo struct {
	stores []*entity.Store
}

func (r *stubStoreRepo) Create(*entity.Store) error                { return nil }
func (r *stubStoreRepo) GetByID(string) (*entity.Store, error)     { return nil, nil }
func (r *stubStoreRepo) Update(*entity.Store) error                { return nil }
func (r *stubStoreRepo) List() ([]*entity.Store, error)            { return r.stores, nil }
func (r *stubStoreRepo) Delete(string) error                       { return nil }
func (r *stubStoreRepo) ListByBrand(brand string) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.stores {
		if s.Brand == brand || s.Brand == entity.BrandAmbos {
			out = append(out, s)
		}
	}
	return out, nil
}

func storeIDs(stores []*entity.Store) map[string]bool {
	out := map[string]bool{}
	for _, s := range stores {
		out[s.ID] = true
	}
	return out
}

func TestStoresForBrand_AmbosEsLaUnionSinDuplicar(t *testing.T) {
	repo := &stubStoreRepo{stores: []*entity.Store{
		{ID: "f1", Brand: entity.BrandFord},
		{ID: "f2", Brand: entity.BrandFord},
		{ID: "g1", Brand: entity.BrandGWM},
		{ID: "m1", Brand: entity.BrandAmbos},
	}}
	uc := NewReconcileUseCase(nil, logger.Nop())

	ford, err := uc.storesForBrand(repo, entity.BrandFord)
	require.NoError(t, err)
	gwm, err := uc.storesForBrand(repo, entity.BrandGWM)
	require.NoError(t, err)
	ambos, err := uc.storesForBrand(repo, entity.BrandAmbos)
	require.NoError(t, err)

	union := storeIDs(ford)
	for id := range storeIDs(gwm) {
		union[id] = true
	}
	assert.Equal(t, union, storeIDs(ambos), "AMBOS debe resolver a la unión de FORD y GWM")
	assert.Len(t, ambos, 4, "la tienda multimarca no debe aparecer dos veces")
}

func TestStoresForBrand_MarcaDesconocidaResuelveVacio(t *testing.T) {
	repo := &stubStoreRepo{stores: []*entity.Store{{ID: "f1", Brand: entity.BrandFord}}}
	uc := NewReconcileUseCase(nil, logger.Nop())

	stores, err := uc.storesForBrand(repo, "TOYOTA")
	require.NoError(t, err, "una marca desconocida no debe romper la creación del curso")
	assert.Empty(t, stores)
}

func TestBrandMatches(t *testing.T) {
	cases := []struct {
		courseBrand string
		storeBrand  string
		want        bool
	}{
		{entity.BrandFord, entity.BrandFord, true},
		{entity.BrandFord, entity.BrandAmbos, true},
		{entity.BrandFord, entity.BrandGWM, false},
		{entity.BrandGWM, entity.BrandGWM, true},
		{entity.BrandAmbos, entity.BrandFord, true},
		{entity.BrandAmbos, entity.BrandGWM, true},
		{"TOYOTA", entity.BrandFord, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, brandMatches(tc.courseBrand, tc.storeBrand),
			"curso %s vs tienda %s", tc.courseBrand, tc.storeBrand)
	}
}
