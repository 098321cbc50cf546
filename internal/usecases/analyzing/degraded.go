package analyzing

import (
	"context"
	"sync/atomic"
)

type degradedKey struct{}

// degradation registra se algum cálculo da chamada caiu no resultado vazio por falha
type degradation struct {
	failed atomic.Bool
}

func trackDegradation(ctx context.Context) (context.Context, *degradation) {
	d := &degradation{}
	return context.WithValue(ctx, degradedKey{}, d), d
}

// markDegraded é chamado em todo ponto que troca uma falha por coleção ou valor vazio
func markDegraded(ctx context.Context) {
	if d, ok := ctx.Value(degradedKey{}).(*degradation); ok {
		d.failed.Store(true)
	}
}

func (d *degradation) Degraded() bool {
	return d.failed.Load()
}
