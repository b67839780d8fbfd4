package pricelist_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalsanjose/billing/internal/catalog"
	"github.com/hospitalsanjose/billing/internal/pricelist"
)

func TestParser_Parse(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    []catalog.UpsertParams
		wantErr bool
	}

	item := func(code, name, price string) catalog.UpsertParams {
		return catalog.UpsertParams{
			Code:      code,
			Name:      name,
			UnitPrice: decimal.RequireFromString(price),
		}
	}

	tests := []testCase{
		{
			name:  "SemicolonWithHeader",
			input: "codigo;descripcion;precio\nCONS-01;Consulta general;250.00\nLAB-02;Hemograma;46.00\n",
			want: []catalog.UpsertParams{
				item("CONS-01", "Consulta general", "250.00"),
				item("LAB-02", "Hemograma", "46.00"),
			},
		},
		{
			name:  "CommaWithoutHeader",
			input: "CONS-01,Consulta general,250.00\n",
			want: []catalog.UpsertParams{
				item("CONS-01", "Consulta general", "250.00"),
			},
		},
		{
			name:  "EuropeanAmounts",
			input: "codigo;descripcion;precio\nCIR-09;Cirugia mayor;1.234,56\n",
			want: []catalog.UpsertParams{
				item("CIR-09", "Cirugia mayor", "1234.56"),
			},
		},
		{
			name:  "PlainCommaDecimal",
			input: "HOSP-01;Dia de hospitalizacion;500,00\n",
			want: []catalog.UpsertParams{
				item("HOSP-01", "Dia de hospitalizacion", "500.00"),
			},
		},
		{
			name:  "TrimsWhitespace",
			input: " CONS-01 ; Consulta general ; 250.00 \n",
			want: []catalog.UpsertParams{
				item("CONS-01", "Consulta general", "250.00"),
			},
		},
		{
			name:  "RoundsToCents",
			input: "LAB-03;Perfil lipidico;46.999\n",
			want: []catalog.UpsertParams{
				item("LAB-03", "Perfil lipidico", "47.00"),
			},
		},
		{
			name:    "MissingColumns",
			input:   "CONS-01;250.00\n",
			wantErr: true,
		},
		{
			name:    "BadPriceBeyondHeader",
			input:   "codigo;descripcion;precio\nCONS-01;Consulta general;gratis\n",
			wantErr: true,
		},
		{
			name:    "EmptyCode",
			input:   ";Consulta general;250.00\n",
			wantErr: true,
		},
	}

	parser := pricelist.NewParser()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(strings.NewReader(tt.input))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Len(t, got, len(tt.want))

			for i := range tt.want {
				assert.Equal(t, tt.want[i].Code, got[i].Code)
				assert.Equal(t, tt.want[i].Name, got[i].Name)
				assert.True(t, tt.want[i].UnitPrice.Equal(got[i].UnitPrice),
					"row %d: want price %s, got %s", i+1, tt.want[i].UnitPrice, got[i].UnitPrice)
			}
		})
	}
}

func TestParser_Parse_Windows1252(t *testing.T) {
	// "Cirugía" with the í encoded as Windows-1252 0xED.
	input := []byte("CIR-01;Cirug\xeda menor;750.00\n")

	parser := pricelist.NewParser()
	got, err := parser.Parse(strings.NewReader(string(input)))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Cirugía menor", got[0].Name)
}
