package inventariotest_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donamed/donamed-api/internal/application/inventario/inventariotest"
	"github.com/donamed/donamed-api/internal/domain/entity"
)

// El repo real de stock nunca devuelve nil para una celda inexistente: la
// devuelve en cero. Los dobles deben honrar el mismo contrato para que los
// casos de uso que leen la celda tras escribirla no se comporten distinto en
// los tests que en producción.
func TestStockRepo_CeldaInexistenteSeDevuelveEnCero(t *testing.T) {
	repo := inventariotest.NewStockRepo()
	key := entity.StockKey{AlmacenID: "ALM-1", MedicamentoCodigo: "MED-001", LoteCodigo: "LOTE-A"}

	s, err := repo.Get(key)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, key, s.Key())
	assert.True(t, s.Cantidad.IsZero())

	bloqueada, err := repo.GetForUpdate(key)
	require.NoError(t, err)
	require.NotNil(t, bloqueada)
	assert.Equal(t, key, bloqueada.Key())
	assert.True(t, bloqueada.Cantidad.IsZero())

	// Una celda escrita se lee de vuelta con su cantidad.
	require.NoError(t, repo.Upsert(&entity.Stock{
		AlmacenID: key.AlmacenID, MedicamentoCodigo: key.MedicamentoCodigo, LoteCodigo: key.LoteCodigo,
		Cantidad: decimal.NewFromInt(7),
	}))
	s, err = repo.Get(key)
	require.NoError(t, err)
	assert.True(t, s.Cantidad.Equal(decimal.NewFromInt(7)))
}
