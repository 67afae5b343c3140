package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/cache"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/pkg/jwt"
)

const testSecret = "secreto-de-test"

// newTestApp levanta la API completa sobre repos en memoria.
func newTestApp(t *testing.T, products ...*entity.Product) (*fiber.App, *memory.ProductRepo) {
	t.Helper()

	productRepo := memory.NewProductRepository()
	movementRepo := memory.NewStockMovementRepository()
	userRepo := memory.NewUserRepository()
	for _, p := range products {
		require.NoError(t, productRepo.Create(p))
	}

	signal := cache.NopInvalidator{}
	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        catalog.NewProductUseCase(productRepo, signal),
		RegisterMovement: ledger.NewRegisterMovementUseCase(memory.NewTxRunner(productRepo, movementRepo), signal),
		ReportUC:         report.NewReportUseCase(productRepo, movementRepo, nil, 7),
		AuthUC:           auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"}),
		JWTSecret:        testSecret,
	})
	return app, productRepo
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "u-test", entity.RoleAdmin, "test", 60)
	require.NoError(t, err)
	return "Bearer " + token
}

func postMovement(t *testing.T, app *fiber.App, token string, body dto.RegisterMovementRequest) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/api/movements", bytes.NewReader(raw))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, payload
}

func standardProduct(sku, qty int64) *entity.Product {
	return &entity.Product{
		SKU: sku, Name: "Tornillo 3mm", Category: entity.CategorySTANDARD,
		UnitPrice: decimal.NewFromFloat(1.50), Quantity: qty, MinimumQuantity: 5,
		CreatedAt: time.Now(),
	}
}

func TestMovements_SalidaAplicada(t *testing.T) {
	app, productRepo := newTestApp(t, standardProduct(1, 10))

	status, payload := postMovement(t, app, bearerToken(t), dto.RegisterMovementRequest{
		SKU: 1, Type: entity.MovementTypeOUTBOUND, Quantity: 3,
	})
	require.Equal(t, fiber.StatusCreated, status, "body: %s", payload)

	var resp dto.MovementResponse
	require.NoError(t, json.Unmarshal(payload, &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, int64(1), resp.SKU)
	assert.Equal(t, int64(3), resp.Quantity)
	assert.False(t, resp.Date.IsZero(), "la fecha la fija el servidor")

	p, _ := productRepo.GetBySKU(1)
	assert.Equal(t, int64(7), p.Quantity)
}

func TestMovements_StockInsuficienteEsConflict(t *testing.T) {
	app, productRepo := newTestApp(t, standardProduct(1, 10))

	status, payload := postMovement(t, app, bearerToken(t), dto.RegisterMovementRequest{
		SKU: 1, Type: entity.MovementTypeOUTBOUND, Quantity: 20,
	})
	assert.Equal(t, fiber.StatusConflict, status)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(payload, &errResp))
	assert.Equal(t, "INSUFFICIENT_STOCK", errResp.Code)

	p, _ := productRepo.GetBySKU(1)
	assert.Equal(t, int64(10), p.Quantity, "el rechazo no muta el stock")
}

func TestMovements_ValidacionesSonBadRequest(t *testing.T) {
	exp := time.Now().AddDate(0, 0, 30)
	perishable := &entity.Product{
		SKU: 2, Name: "Yogur", Category: entity.CategoryPERISHABLE,
		UnitPrice: decimal.NewFromFloat(1.10), Quantity: 10, MinimumQuantity: 2,
		LotNumber: "L-001", ExpirationDate: &exp, CreatedAt: time.Now(),
	}
	app, _ := newTestApp(t, standardProduct(1, 10), perishable)
	token := bearerToken(t)

	cases := []struct {
		name string
		body dto.RegisterMovementRequest
	}{
		{"tipo inválido", dto.RegisterMovementRequest{SKU: 1, Type: "TRANSFER", Quantity: 1}},
		{"cantidad cero", dto.RegisterMovementRequest{SKU: 1, Type: entity.MovementTypeINBOUND, Quantity: 0}},
		{"perecedero sin lote", dto.RegisterMovementRequest{
			SKU: 2, Type: entity.MovementTypeINBOUND, Quantity: 5,
			ExpirationDate: &exp,
		}},
		{"perecedero sin vencimiento", dto.RegisterMovementRequest{
			SKU: 2, Type: entity.MovementTypeINBOUND, Quantity: 5, Batch: "B-01",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := postMovement(t, app, token, tc.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
		})
	}
}

func TestMovements_ProductoInexistenteEsNotFound(t *testing.T) {
	app, _ := newTestApp(t)
	status, _ := postMovement(t, app, bearerToken(t), dto.RegisterMovementRequest{
		SKU: 99, Type: entity.MovementTypeINBOUND, Quantity: 1,
	})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestMovements_SinTokenEsUnauthorized(t *testing.T) {
	app, _ := newTestApp(t, standardProduct(1, 10))
	status, _ := postMovement(t, app, "", dto.RegisterMovementRequest{
		SKU: 1, Type: entity.MovementTypeINBOUND, Quantity: 1,
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestMovements_TokenConFirmaInvalida(t *testing.T) {
	app, _ := newTestApp(t, standardProduct(1, 10))
	forged, err := jwt.Generate("otro-secreto", "u-test", entity.RoleAdmin, "test", 60)
	require.NoError(t, err)
	status, _ := postMovement(t, app, "Bearer "+forged, dto.RegisterMovementRequest{
		SKU: 1, Type: entity.MovementTypeINBOUND, Quantity: 1,
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
