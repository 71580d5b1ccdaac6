package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// page é o envelope padrão das respostas paginadas do Graph API.
type page struct {
	Data   []json.RawMessage `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

// ErrVideoPermission indica que o aplicativo não tem permissão para campos de
// vídeo/criativo. O chamador degrada para listas de vídeo vazias, de modo que
// as taxas de vídeo ainda possam ser estimadas.
var ErrVideoPermission = fmt.Errorf("aplicativo sem permissão para campos de vídeo")

// getJSON faz uma requisição GET respeitando o limitador de requisições.
// Respostas de limite atingido dobram o intervalo e são repetidas; token
// expirado é renovado e a requisição repetida uma única vez.
func (c *MetaClient) getJSON(endpoint string, params url.Values) ([]byte, error) {
	return c.getJSONRetry(endpoint, params, true)
}

func (c *MetaClient) getJSONRetry(endpoint string, params url.Values, allowTokenRetry bool) ([]byte, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	params.Set("access_token", c.Cfg.Meta.AccessToken)
	requestURL := endpoint + "?" + params.Encode()

	for {
		c.limiter.Wait()

		resp, err := c.httpClient.Get(requestURL)
		if err != nil {
			return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("erro ao ler resposta: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests || strings.Contains(string(body), "User request limit reached") {
			wait := c.limiter.Backoff()
			logrus.WithField("wait", wait.String()).Warn("Limite de requisições da API do Meta atingido, aguardando antes de repetir")
			time.Sleep(wait)
			continue
		}

		if resp.StatusCode == http.StatusOK {
			c.limiter.Relax()
			return body, nil
		}

		// Sem permissão para campos de vídeo/criativo: o chamador decide como degradar
		if strings.Contains(string(body), "Application does not have permission") {
			return nil, ErrVideoPermission
		}

		if errorResp, parseErr := ParseErrorResponse(body); parseErr == nil {
			if errorResp.IsRateLimited() {
				wait := c.limiter.Backoff()
				logrus.WithFields(logrus.Fields{
					"code": errorResp.Error.Code,
					"wait": wait.String(),
				}).Warn("Limite de requisições sinalizado pela API do Meta, aguardando antes de repetir")
				time.Sleep(wait)
				continue
			}

			if errorResp.IsTokenExpired() && allowTokenRetry {
				logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d",
					errorResp.Error.Code, errorResp.Error.ErrorSubcode)
				if refreshErr := c.RefreshToken(); refreshErr != nil {
					return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
				}
				return c.getJSONRetry(endpoint, params, false)
			}
		}

		logrus.WithField("status", resp.StatusCode).Error("Requisição à API do Meta falhou")
		return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}
}

// paginate percorre todas as páginas de um endpoint seguindo paging.next e
// devolve a sequência completa de itens ao chamador.
func (c *MetaClient) paginate(endpoint string, params url.Values) ([]json.RawMessage, error) {
	body, err := c.getJSON(endpoint, params)
	if err != nil {
		return nil, err
	}

	var p page
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta paginada: %w", err)
	}

	all := make([]json.RawMessage, 0, len(p.Data))
	all = append(all, p.Data...)

	next := p.Paging.Next
	pageCount := 1

	for next != "" {
		pageCount++
		logrus.WithField("page", pageCount).Debug("Buscando próxima página de resultados")

		c.limiter.Wait()
		resp, err := c.httpClient.Get(next)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao buscar página seguinte, interrompendo paginação")
			break
		}

		pageBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil || resp.StatusCode != http.StatusOK {
			logrus.WithField("status", resp.StatusCode).Warn("Página seguinte indisponível, interrompendo paginação")
			break
		}

		var nextPage page
		if err := json.Unmarshal(pageBody, &nextPage); err != nil {
			logrus.WithError(err).Warn("Erro ao decodificar página seguinte, interrompendo paginação")
			break
		}

		all = append(all, nextPage.Data...)
		next = nextPage.Paging.Next
	}

	return all, nil
}

// timeRangeParam monta o parâmetro time_range no formato {"since":...,"until":...}.
func timeRangeParam(since, until time.Time) string {
	return fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", since.Format(time.DateOnly), until.Format(time.DateOnly))
}
