// Package bedrock implementa o narrador de insights sobre o AWS Bedrock.
// Os dados nunca saem da AWS; nenhuma chamada externa adicional é feita.
package bedrock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultModelID   = "anthropic.claude-3-sonnet-20240229-v1:0"
	defaultRegion    = "us-east-1"
	defaultMaxTokens = 1500
)

// Config são os parâmetros de conexão com o Bedrock
type Config struct {
	Region    string `mapstructure:"region"`
	ModelID   string `mapstructure:"model_id"`
	MaxTokens int    `mapstructure:"max_tokens"`
	Enabled   bool   `mapstructure:"enabled"`
}

// Narrator gera resumos executivos chamando um modelo hospedado no Bedrock
type Narrator struct {
	client    *bedrockruntime.Client
	modelID   string
	maxTokens int
}

// Formato de mensagens da API de modelos Anthropic no Bedrock
type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	System           string    `json:"system,omitempty"`
	Messages         []message `json:"messages"`
	Temperature      float64   `json:"temperature,omitempty"`
}

type invokeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// NewNarrator cria o narrador carregando as credenciais padrão da AWS
func NewNarrator(ctx context.Context, cfg Config) (*Narrator, error) {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração da AWS: %w", err)
	}

	modelID := cfg.ModelID
	if modelID == "" {
		modelID = defaultModelID
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	logrus.WithFields(logrus.Fields{
		"model":  modelID,
		"region": region,
	}).Info("Narrador Bedrock inicializado")

	return &Narrator{
		client:    bedrockruntime.NewFromConfig(awsCfg),
		modelID:   modelID,
		maxTokens: maxTokens,
	}, nil
}

// Narrate monta o prompt com o resultado da análise e chama o modelo
func (n *Narrator) Narrate(ctx context.Context, accountID string, period domain.PeriodMeta, result *domain.IntelligenceResult) (*domain.Narrative, error) {
	if result == nil {
		return nil, fmt.Errorf("nenhum resultado de análise para narrar")
	}

	request := invokeRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        n.maxTokens,
		System:           systemPrompt,
		Messages: []message{
			{
				Role: "user",
				Content: []contentBlock{
					{Type: "text", Text: buildUserPrompt(period, result)},
				},
			},
		},
		Temperature: 0.3,
	}

	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisição do narrador: %w", err)
	}

	output, err := n.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(n.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        requestBody,
	})
	if err != nil {
		return nil, fmt.Errorf("erro na chamada ao Bedrock: %w", err)
	}

	var response invokeResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("erro ao interpretar resposta do Bedrock: %w", err)
	}

	var text strings.Builder
	for _, content := range response.Content {
		if content.Type == "text" {
			text.WriteString(content.Text)
		}
	}

	if text.Len() == 0 {
		return nil, fmt.Errorf("o modelo não retornou texto (stop_reason=%s)", response.StopReason)
	}

	logrus.WithFields(logrus.Fields{
		"accountID":    accountID,
		"inputTokens":  response.Usage.InputTokens,
		"outputTokens": response.Usage.OutputTokens,
	}).Info("Narrativa gerada")

	return &domain.Narrative{
		AccountID:   accountID,
		Period:      periodKey(period),
		Text:        text.String(),
		Model:       n.modelID,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

const systemPrompt = `Você é um analista sênior de marketing digital para e-commerce.
Escreva em português, em tom executivo e direto.

Regras:
- Use somente os números fornecidos; nunca invente métricas.
- Comece pelo diagnóstico geral da conta em uma frase.
- Destaque a prioridade máxima quando houver.
- Termine com as ações recomendadas em ordem de impacto.
- No máximo quatro parágrafos curtos.`

// buildUserPrompt serializa o resultado em um bloco estruturado para o modelo
func buildUserPrompt(period domain.PeriodMeta, result *domain.IntelligenceResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Período analisado: %s a %s (%d dias)\n",
		period.StartDate.Format("2006-01-02"),
		period.EndDate.Format("2006-01-02"),
		period.PeriodDays,
	)
	fmt.Fprintf(&b, "Score de saúde da conta: %.2f de 100\n\n", result.HealthScore)

	if result.TopPriority != nil {
		fmt.Fprintf(&b, "Prioridade máxima: %s (%s, variação de %.1f%%)\n\n",
			result.TopPriority.Title, result.TopPriority.Severity, result.TopPriority.DeltaPct)
	}

	if len(result.Insights) > 0 {
		b.WriteString("Insights do período:\n")
		for _, insight := range result.Insights {
			fmt.Fprintf(&b, "- [%s] %s: %s\n", insight.Severity, insight.Title, insight.Description)
			for _, rec := range insight.Recommendations {
				fmt.Fprintf(&b, "  Ação sugerida: %s\n", rec)
			}
		}
	}

	b.WriteString("\nEscreva o resumo executivo do período para o gestor da conta.")

	return b.String()
}

func periodKey(period domain.PeriodMeta) string {
	return fmt.Sprintf("%s:%s",
		period.StartDate.Format("2006-01-02"),
		period.EndDate.Format("2006-01-02"),
	)
}
