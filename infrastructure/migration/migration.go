// Package migration aplica o schema do banco na inicialização
package migration

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spotfinder/parking-analytics-api/infrastructure/database/postgres"
)

//go:embed sql/*.sql
var scripts embed.FS

// Migrate executa os scripts em ordem de nome. Todos são idempotentes.
func Migrate(ctx context.Context, q postgres.Queryer) error {
	entries, err := scripts.ReadDir("sql")
	if err != nil {
		return fmt.Errorf("erro ao listar scripts de migração: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := scripts.ReadFile("sql/" + name)
		if err != nil {
			return fmt.Errorf("erro ao ler script %s: %w", name, err)
		}

		if _, err := q.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("erro ao executar script %s: %w", name, err)
		}

		logrus.WithField("script", name).Info("Script de migração aplicado")
	}

	return nil
}
