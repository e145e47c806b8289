// seed_ncm gera um script SQL de regras tributárias a partir da Tabela NCM
// oficial (XML do Siscomex, codificado em ISO-8859-1).
//
// Cruza os códigos presentes na tabela com o mapa de tratamentos da LC 214/2025
// (redução de 60% para alimentos, alíquota zero para a cesta básica) e emite
// uma regra por prefixo encontrado. Capítulos sem tratamento diferenciado não
// geram regra: o motor já aplica a alíquota padrão na ausência de match.
//
// Uso: go run ./cmd/seed_ncm [caminho/Tabela_NCM.xml]
// Por padrão procura Tabela_NCM.xml no diretório atual.
// Escreve: internal/infrastructure/postgres/migrations/003_seed_tax_rules.sql
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// tratamento tratamento tributário diferenciado de um prefixo NCM.
type tratamento struct {
	fator      string // multiplicador sobre as alíquotas padrão: "0.4" = redução de 60%
	creditavel bool
	descricao  string
}

// Prefixos com tratamento diferenciado na LC 214/2025. Capítulos 22 (bebidas)
// e 24 (fumo) ficam de fora de propósito: são os prefixos excluídos do motor.
var tratamentos = map[string]tratamento{
	"04":   {fator: "0.4", creditavel: true, descricao: "Laticínios (redução 60%)"},
	"07":   {fator: "0.4", creditavel: true, descricao: "Hortícolas (redução 60%)"},
	"08":   {fator: "0.4", creditavel: true, descricao: "Frutas (redução 60%)"},
	"1006": {fator: "0", creditavel: true, descricao: "Arroz (cesta básica, alíquota zero)"},
	"1101": {fator: "0", creditavel: true, descricao: "Farinha de trigo (cesta básica, alíquota zero)"},
	"1507": {fator: "0.4", creditavel: true, descricao: "Óleo de soja (redução 60%)"},
	"1701": {fator: "0.4", creditavel: true, descricao: "Açúcar (redução 60%)"},
	"30":   {fator: "0.4", creditavel: true, descricao: "Medicamentos (redução 60%)"},
}

func main() {
	xmlPath := "Tabela_NCM.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := doc.ReadFromFile(xmlPath); err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}

	// Prefixos com tratamento que de fato aparecem na tabela vigente
	found := make(map[string]bool)
	for _, el := range doc.FindElements("//nomenclatura") {
		codigo := strings.Map(keepDigits, el.SelectAttrValue("codigo", ""))
		if codigo == "" {
			continue
		}
		for prefix := range tratamentos {
			if strings.HasPrefix(codigo, prefix) {
				found[prefix] = true
			}
		}
	}
	if len(found) == 0 {
		fmt.Fprintln(os.Stderr, "Nenhum código NCM com tratamento diferenciado na tabela")
		os.Exit(1)
	}

	var prefixes []string
	for p := range found {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "003_seed_tax_rules.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Criar arquivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Regras tributárias com tratamento diferenciado (LC 214/2025)\n")
	out.WriteString("-- Gerado a partir da Tabela NCM oficial (Siscomex)\n\n")

	// As alíquotas gravadas partem do padrão 17.7/8.8 escalado pelo fator do
	// tratamento. Prioridade 10 para vencerem regras genéricas cadastradas à mão.
	for _, prefix := range prefixes {
		t := tratamentos[prefix]
		ibs := scaled("17.7", t.fator)
		cbs := scaled("8.8", t.fator)
		fmt.Fprintf(out, "INSERT INTO tax_rules (id, pattern, jurisdiction, rate_ibs, rate_cbs, rate_is, creditable, priority, valid_from, description)\n")
		fmt.Fprintf(out, "VALUES ('seed-ncm-%s', '%s', '*', %s, %s, 0, %t, 10, '2026-01-01', '%s')\n",
			prefix, prefix, ibs, cbs, t.creditavel, escapeSQL(t.descricao))
		out.WriteString("ON CONFLICT (id) DO UPDATE SET rate_ibs = EXCLUDED.rate_ibs, rate_cbs = EXCLUDED.rate_cbs, description = EXCLUDED.description;\n")
	}

	fmt.Printf("Gerado %s: %d regras\n", outPath, len(prefixes))
}

func keepDigits(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}

// scaled multiplica uma alíquota decimal (string) por um fator simples.
// Os fatores usados são 0 e 0.4, então basta tratar esses dois casos.
func scaled(rate, factor string) string {
	switch factor {
	case "0":
		return "0"
	case "1":
		return rate
	}
	var v float64
	fmt.Sscanf(rate, "%f", &v)
	var f float64
	fmt.Sscanf(factor, "%f", &f)
	return fmt.Sprintf("%.4f", v*f)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
