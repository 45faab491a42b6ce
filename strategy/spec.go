package strategy

import (
	"fmt"
	"strconv"
)

// Kind identifies a strategy variant. The set is closed: Spec.Build matches
// exhaustively and rejects anything else at construction time.
type Kind string

const (
	KindMACross   Kind = "ma_cross"
	KindRSI       Kind = "rsi"
	KindMACD      Kind = "macd"
	KindMAWithRSI Kind = "ma_rsi"
)

// MACrossParams configures MovingAverageCross.
type MACrossParams struct {
	Short int `yaml:"short" json:"short"`
	Long  int `yaml:"long" json:"long"`
}

// RSIParams configures RSIStrategy.
type RSIParams struct {
	Period     int     `yaml:"period" json:"period"`
	Overbought float64 `yaml:"overbought" json:"overbought"`
	Oversold   float64 `yaml:"oversold" json:"oversold"`
}

// MAWithRSIParams configures MAWithRSI.
type MAWithRSIParams struct {
	Short   int     `yaml:"short" json:"short"`
	Long    int     `yaml:"long" json:"long"`
	RSIBuy  float64 `yaml:"rsi_buy" json:"rsi_buy"`
	RSISell float64 `yaml:"rsi_sell" json:"rsi_sell"`
}

// Spec is the serializable, tagged description of a strategy. Exactly the
// parameter block matching Kind is consulted; a nil block falls back to the
// variant defaults.
type Spec struct {
	Kind      Kind             `yaml:"kind" json:"kind"`
	MACross   *MACrossParams   `yaml:"ma_cross,omitempty" json:"ma_cross,omitempty"`
	RSI       *RSIParams       `yaml:"rsi,omitempty" json:"rsi,omitempty"`
	MAWithRSI *MAWithRSIParams `yaml:"ma_rsi,omitempty" json:"ma_rsi,omitempty"`
}

// Defaults mirror the common charting-platform settings.
var (
	defaultMACross   = MACrossParams{Short: 20, Long: 50}
	defaultRSI       = RSIParams{Period: 14, Overbought: 70, Oversold: 30}
	defaultMAWithRSI = MAWithRSIParams{Short: 20, Long: 50, RSIBuy: 30, RSISell: 70}
)

// Build constructs the strategy the spec describes. Unknown kinds and invalid
// parameters are configuration errors and fail immediately.
func (s Spec) Build() (Strategy, error) {
	switch s.Kind {
	case KindMACross:
		p := defaultMACross
		if s.MACross != nil {
			p = *s.MACross
		}
		return NewMovingAverageCross(p.Short, p.Long)

	case KindRSI:
		p := defaultRSI
		if s.RSI != nil {
			p = *s.RSI
		}
		return NewRSIStrategy(p.Period, p.Overbought, p.Oversold)

	case KindMACD:
		return NewMACDStrategy(), nil

	case KindMAWithRSI:
		p := defaultMAWithRSI
		if s.MAWithRSI != nil {
			p = *s.MAWithRSI
		}
		return NewMAWithRSI(p.Short, p.Long, p.RSIBuy, p.RSISell)

	default:
		return nil, fmt.Errorf("unknown strategy kind %q (supported: %s, %s, %s, %s)",
			s.Kind, KindMACross, KindRSI, KindMACD, KindMAWithRSI)
	}
}

// Parameters flattens the active parameter block for persistence.
func (s Spec) Parameters() map[string]string {
	params := map[string]string{}
	switch s.Kind {
	case KindMACross:
		p := defaultMACross
		if s.MACross != nil {
			p = *s.MACross
		}
		params["short_window"] = strconv.Itoa(p.Short)
		params["long_window"] = strconv.Itoa(p.Long)

	case KindRSI:
		p := defaultRSI
		if s.RSI != nil {
			p = *s.RSI
		}
		params["rsi_period"] = strconv.Itoa(p.Period)
		params["overbought"] = formatFloat(p.Overbought)
		params["oversold"] = formatFloat(p.Oversold)

	case KindMAWithRSI:
		p := defaultMAWithRSI
		if s.MAWithRSI != nil {
			p = *s.MAWithRSI
		}
		params["short_window"] = strconv.Itoa(p.Short)
		params["long_window"] = strconv.Itoa(p.Long)
		params["rsi_buy"] = formatFloat(p.RSIBuy)
		params["rsi_sell"] = formatFloat(p.RSISell)
	}
	return params
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
