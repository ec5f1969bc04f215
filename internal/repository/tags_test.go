package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jackscave/service-desk/internal/repository"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "trims and drops empties", raw: "login, urgente,  móvil ", want: []string{"login", "urgente", "móvil"}},
		{name: "empty input", raw: "", want: []string{}},
		{name: "only separators", raw: " , ,, ", want: []string{}},
		{name: "lowercases", raw: "Login,URGENTE,Móvil", want: []string{"login", "urgente", "móvil"}},
		{name: "drops repeats keeping first", raw: "foro, Foro, rendimiento, foro", want: []string{"foro", "rendimiento"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, repository.ParseTags(tc.raw))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"error 500, inicio", "foro"}, repository.NormalizeTags([]string{" Error 500, Inicio ", "", "foro", "FORO"}))
	assert.Equal(t, []string{}, repository.NormalizeTags(nil))
}
