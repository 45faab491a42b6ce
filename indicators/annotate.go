package indicators

import (
	"github.com/mrosset/stratlab/market"
)

// Defaults used when a strategy needs a column the data source did not
// provide. They match the common charting-platform settings.
const (
	DefaultRSIPeriod  = 14
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// Annotate returns a clone of the series with the RSI and MACD columns
// filled in. The input series is never modified.
func Annotate(s market.Series) market.Series {
	out := s.Clone()
	closes := out.Closes()

	// Periods are validated constants, errors are impossible here.
	rsi, _ := RSI(closes, DefaultRSIPeriod)
	macd, signal, _ := MACD(closes, DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)

	for i := range out {
		out[i].RSI = rsi[i]
		out[i].MACD = macd[i]
		out[i].MACDSignal = signal[i]
	}
	return out
}
