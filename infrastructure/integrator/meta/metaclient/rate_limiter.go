package metaclient

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// rateLimiter impõe um intervalo mínimo entre requisições à API do Meta.
// O intervalo dobra a cada resposta de limite atingido e relaxa gradualmente
// (divisão por 1.5) a cada sucesso, nunca abaixo do piso configurado.
type rateLimiter struct {
	mu          sync.Mutex
	floor       time.Duration
	ceiling     time.Duration
	wait        time.Duration
	lastRequest time.Time
}

func newRateLimiter(floor, ceiling time.Duration) *rateLimiter {
	if floor <= 0 {
		floor = 2 * time.Second
	}
	if ceiling < floor {
		ceiling = 5 * time.Minute
	}
	return &rateLimiter{
		floor:   floor,
		ceiling: ceiling,
		wait:    floor,
	}
}

// Wait bloqueia até que o intervalo mínimo desde a última requisição
// tenha passado e marca o início de uma nova requisição.
func (r *rateLimiter) Wait() {
	r.mu.Lock()
	elapsed := time.Since(r.lastRequest)
	pause := r.wait - elapsed
	r.mu.Unlock()

	if pause > 0 {
		logrus.WithField("pause", pause.String()).Debug("Aguardando intervalo entre requisições à API do Meta")
		time.Sleep(pause)
	}

	r.mu.Lock()
	r.lastRequest = time.Now()
	r.mu.Unlock()
}

// Backoff dobra o intervalo (limitado ao teto) e retorna o novo valor.
func (r *rateLimiter) Backoff() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wait *= 2
	if r.wait > r.ceiling {
		r.wait = r.ceiling
	}
	return r.wait
}

// Relax reduz o intervalo após um sucesso, respeitando o piso.
func (r *rateLimiter) Relax() {
	r.mu.Lock()
	defer r.mu.Unlock()

	reduced := time.Duration(float64(r.wait) / 1.5)
	if reduced < r.floor {
		reduced = r.floor
	}
	r.wait = reduced
}

// Current retorna o intervalo vigente.
func (r *rateLimiter) Current() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wait
}
