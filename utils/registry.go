package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
)

type cnpjApiResponse struct {
	Cnpj                       string `json:"cnpj"`
	RazaoSocial                string `json:"razao_social"`
	DescricaoSituacaoCadastral string `json:"descricao_situacao_cadastral"`
}

var (
	cnpjLookupURL = "https://brasilapi.com.br/api/cnpj/v1/"
	cnpjRegex     = regexp.MustCompile(`^\d{14}$`)
)

// VerifyCnpj checks a company registration number against the public
// registry. Returns true only when the number exists and the registration
// is currently active.
func VerifyCnpj(cnpj string) (bool, error) {
	if !cnpjRegex.MatchString(cnpj) {
		return false, nil
	}

	req, err := http.NewRequest("GET", cnpjLookupURL+cnpj, nil)
	if err != nil {
		return false, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("registry API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var apiResp cnpjApiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return false, fmt.Errorf("error decoding response: %v", err)
	}

	return apiResp.Cnpj == cnpj && apiResp.DescricaoSituacaoCadastral == "ATIVA", nil
}
