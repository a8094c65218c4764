package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/marketing-intelligence-api/pkg/log"
)

// LoggingMiddleware registra informações sobre cada requisição HTTP
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Gera um ID de correlação para esta requisição
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)

			startTime := time.Now()

			isDev := log.IsDevelopment()

			if isDev {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ Iniciando requisição")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
					"referer":        r.Referer(),
					"content_type":   r.Header.Get("Content-Type"),
					"content_length": r.ContentLength,
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)

			var logger log.Logger

			if isDev {
				statusSymbol := "✓"
				if lrw.statusCode >= 400 {
					statusSymbol = "✗"
				}

				logMsg := fmt.Sprintf("%s Completada em %s", statusSymbol, formatDuration(responseTime))

				logger = log.L.WithFields(log.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"status_code": lrw.statusCode,
				})

				if lrw.statusCode >= 500 {
					logger.Error(logMsg)
				} else if lrw.statusCode >= 400 {
					logger.Warn(logMsg)
				} else {
					logger.Info(logMsg)
				}

				if responseTime > 500*time.Millisecond {
					log.L.Warnf("⚠ Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, responseTime.Milliseconds())
				}
			} else {
				logFields := log.Fields{
					"correlation_id": correlationID,
					"method":         r.Method,
					"path":           r.URL.Path,
					"duration_ms":    responseTime.Milliseconds(),
					"status_code":    lrw.statusCode,
				}

				logger = log.L.WithFields(logFields)

				if lrw.statusCode >= 500 {
					logger.Error("Requisição finalizada com erro")
				} else if lrw.statusCode >= 400 {
					logger.Warn("Requisição finalizada com aviso")
				} else {
					logger.Info("Requisição finalizada com sucesso")
				}

				if responseTime > 500*time.Millisecond {
					log.L.WithFields(logFields).Warnf("Requisição lenta: %s", responseTime)
				}
			}
		})
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	} else {
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware captura panics não tratados e devolve 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					isDev := log.IsDevelopment()

					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					if isDev {
						log.L.WithFields(log.Fields{
							"error": err,
							"path":  r.URL.Path,
						}).Error("❌ PANIC na aplicação")

						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						ctx := r.Context()
						correlationID := log.GetCorrelationID(ctx)

						logger := log.L.WithFields(log.Fields{
							"correlation_id": correlationID,
							"panic_error":    err,
							"method":         r.Method,
							"path":           r.URL.Path,
						})

						logger.Error("Erro não tratado na aplicação")
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
