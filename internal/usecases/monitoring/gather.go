package monitoring

import (
	"context"
	"sync"
)

// ProbeOutcome captura o resultado individual de uma sonda. OK falso com Err
// preenchido significa que a sonda falhou; o job segue com dado nulo para
// aquela fatia
type ProbeOutcome struct {
	OK   bool
	Data map[string]any
	Err  error
}

type probeFunc func(ctx context.Context) (map[string]any, error)

// gatherProbes dispara todas as sondas concorrentemente e espera todas
// terminarem, com sucesso ou falha. Nunca interrompe na primeira falha: o
// contrato de isolamento entre sondas fica explícito aqui
func gatherProbes(ctx context.Context, probes map[string]probeFunc) map[string]ProbeOutcome {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		outcomes = make(map[string]ProbeOutcome, len(probes))
	)

	for name, probe := range probes {
		wg.Add(1)
		go func(name string, probe probeFunc) {
			defer wg.Done()

			data, err := probe(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				outcomes[name] = ProbeOutcome{OK: false, Err: err}
				return
			}
			outcomes[name] = ProbeOutcome{OK: true, Data: data}
		}(name, probe)
	}

	wg.Wait()
	return outcomes
}
