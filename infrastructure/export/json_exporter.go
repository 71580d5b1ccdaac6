package export

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Exporter grava o resultado completo de uma execução de análise em arquivo,
// como alternativa de saída ao banco.
type Exporter interface {
	ExportAnalysis(accountID, date string, results []*domain.AnalysisResult, summary *domain.DashboardSummary) (string, error)
}

type FileExporter struct {
	dir string
}

func NewFileExporter(dir string) Exporter {
	return &FileExporter{dir: dir}
}

type analysisFile struct {
	AccountID string                   `json:"account_id"`
	Date      string                   `json:"date"`
	Results   []*domain.AnalysisResult `json:"results"`
	Summary   *domain.DashboardSummary `json:"summary,omitempty"`
}

// ExportAnalysis escreve o arquivo analysis_<conta>_<data>.json no diretório
// configurado, sobrescrevendo execuções anteriores do mesmo dia.
func (e *FileExporter) ExportAnalysis(accountID, date string, results []*domain.AnalysisResult, summary *domain.DashboardSummary) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar o diretório de exportação: %w", err)
	}

	payload, err := json.MarshalIndent(analysisFile{
		AccountID: accountID,
		Date:      date,
		Results:   results,
		Summary:   summary,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("erro ao serializar a análise para JSON: %w", err)
	}

	path := filepath.Join(e.dir, fmt.Sprintf("analysis_%s_%s.json", accountID, date))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar o arquivo de exportação: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"path":       path,
		"results":    len(results),
	}).Info("export: análise exportada para arquivo")

	return path, nil
}
