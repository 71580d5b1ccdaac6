package metadomain

import (
	"bytes"
	"encoding/json"
)

// Action é um item de campo de ações da API do Meta: {"action_type":"lead","value":"3"}.
type Action struct {
	ActionType string    `json:"action_type"`
	Value      FlexFloat `json:"value"`
}

// ActionList aceita as duas formas que o Meta usa para campos de ação:
// lista de {action_type, value} ou escalar simples. A forma escalar é
// convertida para uma lista de um item com action_type vazio.
//
// Present distingue campo presente (mesmo vazio) de campo ausente, porque
// a estimativa de métricas de vídeo depende dessa distinção.
type ActionList struct {
	Items   []Action
	Present bool
}

func (l *ActionList) UnmarshalJSON(data []byte) error {
	l.Present = true

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		l.Items = nil
		return nil
	}

	if data[0] == '[' {
		var items []Action
		if err := json.Unmarshal(data, &items); err != nil {
			l.Items = nil
			return nil
		}
		l.Items = items
		return nil
	}

	var v FlexFloat
	if err := v.UnmarshalJSON(data); err != nil {
		l.Items = nil
		return nil
	}
	l.Items = []Action{{Value: v}}
	return nil
}

func (l ActionList) MarshalJSON() ([]byte, error) {
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

// IsEmpty cobre tanto o campo ausente quanto a lista vazia. As duas formas
// disparam a estimativa de visualizações de vídeo.
func (l ActionList) IsEmpty() bool {
	return !l.Present || len(l.Items) == 0
}

// SumByTypes soma os valores cujos action_type estão na lista informada.
// Se nenhum tipo for informado, soma todos os itens.
func (l ActionList) SumByTypes(types ...string) float64 {
	var total float64
	for _, item := range l.Items {
		if len(types) == 0 {
			total += item.Value.Float64()
			continue
		}
		for _, t := range types {
			if item.ActionType == t {
				total += item.Value.Float64()
				break
			}
		}
	}
	return total
}

// Scalar indica que o campo chegou na forma escalar (um item sem action_type)
// e retorna o valor bruto.
func (l ActionList) Scalar() (float64, bool) {
	if len(l.Items) == 1 && l.Items[0].ActionType == "" {
		return l.Items[0].Value.Float64(), true
	}
	return 0, false
}

// ValueOf retorna o valor do primeiro item com o action_type informado
// e um indicador de presença.
func (l ActionList) ValueOf(actionType string) (float64, bool) {
	for _, item := range l.Items {
		if item.ActionType == actionType {
			return item.Value.Float64(), true
		}
	}
	return 0, false
}
