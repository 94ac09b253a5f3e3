package adapter_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fisco/internal/adapter"
	"fisco/internal/domain"
	"fisco/internal/lifecycle"
	"fisco/internal/tax"
)

type stubIssuer struct {
	profile *domain.IssuerProfile
	err     error
}

func (s *stubIssuer) Profile(context.Context) (*domain.IssuerProfile, error) {
	return s.profile, s.err
}

func configuredIssuer() *stubIssuer {
	return &stubIssuer{profile: &domain.IssuerProfile{
		Name:      "Acme Transportes Ltda",
		TaxID:     "11222333000181",
		TaxRegime: "normal",
		Address: domain.Address{
			City: "São Paulo", State: "SP", PostalCode: "01310100", MunicipalityCode: "3550308",
		},
	}}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newAdapter(issuer *stubIssuer) *adapter.Adapter {
	return adapter.New(fixtureTable(), issuer, lifecycle.New())
}

func enteredNFe() *adapter.EnteredDocument {
	return &adapter.EnteredDocument{
		Kind:          "nfe",
		IssuedAt:      time.Now().UTC(),
		Operation:     "saida",
		Purpose:       "normal",
		Presence:      "internet",
		FinalConsumer: "sim",
		BuyerName:     "Maria Souza",
		BuyerTaxID:    "529.982.247-25",
		DeliveryCity:  "Curitiba",
		DeliveryState: "PR",
		DeliveryCEP:   "80010-010",
		Lines: []adapter.EnteredLine{
			{Description: "Widget A", Quantity: dec("10"), UnitPrice: dec("50.00")},
			{Description: "Widget B", Quantity: dec("2"), UnitPrice: dec("250.00")},
		},
		Taxes: tax.Input{
			ICMS: &tax.Pair{Base: dec("1000.00"), Rate: dec("18")},
		},
	}
}

func TestAssemble_NFe(t *testing.T) {
	a := newAdapter(configuredIssuer())

	out, res, err := a.Assemble(context.Background(), enteredNFe())
	require.NoError(t, err)
	assert.True(t, res.Valid, "errors: %v", res.Errors)

	assert.Equal(t, domain.KindNFe, out.Kind)
	assert.Equal(t, 1, out.OperationCode)
	assert.Equal(t, 1, out.PurposeCode)
	assert.Equal(t, 2, out.PresenceCode)
	assert.Equal(t, 1, out.FinalConsumerCode)
	assert.Equal(t, "52998224725", out.BuyerCPF)
	assert.Empty(t, out.BuyerCNPJ)
	assert.Equal(t, "4106902", out.MunicipalityCode)
	assert.Equal(t, "80010010", out.DeliveryCEP)
	assert.Equal(t, "1000.00", out.Subtotal.StringFixed(2))
	require.NotNil(t, out.Taxes.ICMS)
	assert.Equal(t, "180.00", out.Taxes.ICMS.Amount.StringFixed(2))
	assert.Equal(t, "1180.00", out.GrandTotal.StringFixed(2))
}

func TestAssemble_BuyerTaxIDRouting(t *testing.T) {
	a := newAdapter(configuredIssuer())

	t.Run("organization_routes_to_cnpj", func(t *testing.T) {
		in := enteredNFe()
		in.BuyerTaxID = "11.222.333/0001-81"
		out, res, err := a.Assemble(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, "11222333000181", out.BuyerCNPJ)
		assert.Empty(t, out.BuyerCPF)
	})

	t.Run("absent_is_allowed", func(t *testing.T) {
		in := enteredNFe()
		in.BuyerTaxID = ""
		_, res, err := a.Assemble(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("bad_check_digit", func(t *testing.T) {
		in := enteredNFe()
		in.BuyerTaxID = "52998224726"
		_, res, err := a.Assemble(context.Background(), in)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "buyer CPF")
	})

	t.Run("odd_length", func(t *testing.T) {
		in := enteredNFe()
		in.BuyerTaxID = "12345"
		_, res, err := a.Assemble(context.Background(), in)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "11 or 14 digits")
	})
}

func TestAssemble_MunicipalityFallback(t *testing.T) {
	a := newAdapter(configuredIssuer())
	in := enteredNFe()
	in.DeliveryCity = "Springfield"
	in.DeliveryState = "SP"

	out, res, err := a.Assemble(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, adapter.DefaultMunicipalityCode, out.MunicipalityCode)
}

func TestAssemble_IssuerNotConfiguredFailsLoudly(t *testing.T) {
	a := newAdapter(&stubIssuer{err: domain.ErrIssuerNotConfigured})

	_, _, err := a.Assemble(context.Background(), enteredNFe())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIssuerNotConfigured)
}

func TestAssemble_UnknownKind(t *testing.T) {
	a := newAdapter(configuredIssuer())
	in := enteredNFe()
	in.Kind = "receipt"

	_, _, err := a.Assemble(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownDocumentKind)
}

func TestAssemble_ManifestRunsReconciliation(t *testing.T) {
	a := newAdapter(configuredIssuer())
	now := time.Now().UTC()
	totalValue := dec("500.00")
	totalWeight := dec("1200.00")
	in := &adapter.EnteredDocument{
		Kind:          "mdfe",
		IssuedAt:      now,
		TransportMode: "road",
		DistanceKM:    &totalWeight, // any non-nil distance silences the advisory
		TotalValue:    &totalValue,
		TotalWeight:   &totalWeight,
		Linked: []domain.LinkedDocument{
			{
				Kind:      domain.LinkedNFe,
				AccessKey: "35250111222333000181550010000012341123456786",
				Value:     dec("300.00"),
				Weight:    dec("700.00"),
				IssuedAt:  now.Add(-time.Hour),
			},
			{
				Kind:      domain.LinkedCTe,
				AccessKey: "52210411222333000181570010000043211876543212",
				Value:     dec("150.00"), // sum 450.00 vs declared 500.00
				Weight:    dec("500.00"),
				IssuedAt:  now.Add(-2 * time.Hour),
			},
		},
	}

	_, res, err := a.Assemble(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "500.00")
	assert.Contains(t, res.Errors[0], "450.00")
}

func TestAssemble_NilPanics(t *testing.T) {
	a := newAdapter(configuredIssuer())
	assert.Panics(t, func() { _, _, _ = a.Assemble(context.Background(), nil) })
}

func TestSubtotal(t *testing.T) {
	lines := []adapter.EnteredLine{
		{Quantity: dec("3"), UnitPrice: dec("19.99")},
		{Quantity: dec("1.5"), UnitPrice: dec("10.01")},
	}
	// 59.97 + 15.015→15.02 (rounded per line)
	assert.Equal(t, "74.99", adapter.Subtotal(lines).StringFixed(2))
	assert.True(t, adapter.Subtotal(nil).IsZero())
}
