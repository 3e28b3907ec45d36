package hindsight

import (
	"encoding/json"
	"io"
)

// MarshalJSON writes the outcomes in ranked order, followed by the totals.
func (r *Report) MarshalJSON() ([]byte, error) {
	return object{
		{key: "mode", value: r.Mode},
		{key: "ranked", value: r.Ranked},
		{key: "skipped", value: r.Skipped},
		{key: "total_invested", value: r.TotalInvested},
		{key: "total_profit", value: r.TotalProfit},
		{key: "reference", value: r.Reference},
		{key: "total_profit_pct", value: r.TotalProfitPct},
	}.MarshalJSON()
}

func (s *Skip) MarshalJSON() ([]byte, error) {
	o := object{
		{key: "id", value: s.ID},
		{key: "reason", value: s.Reason},
	}
	if s.Err != nil {
		o = append(o, field{key: "error", value: s.Err.Error()})
	}
	return o.MarshalJSON()
}

// EncodeReport writes r as indented JSON.
func EncodeReport(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ReportValue returns r as generic JSON values (maps, slices, strings and
// numbers), suitable for path queries.
func ReportValue(r *Report) (any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var v any
	err = json.Unmarshal(data, &v)
	return v, err
}
