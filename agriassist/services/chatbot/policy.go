package chatbot

import (
	"agriassist/agriassist/utils/logging"

	"github.com/magiconair/properties"
	"go.uber.org/zap"
)

// Policy holds the matcher's tunable thresholds.
type Policy struct {
	MinScore       int     // top score needed to answer from the knowledge base
	ExactBonus     int     // whole query found in the keywords string
	TermBonus      int     // keyword term found in the query
	PartialBonus   int     // query token found inside a keyword term
	SecondaryRatio float64 // second match must reach primary*ratio to be merged
	SummaryLimit   int     // in runes, ellipsis included
}

func DefaultPolicy() Policy {
	return Policy{
		MinScore:       3,
		ExactBonus:     10,
		TermBonus:      3,
		PartialBonus:   1,
		SecondaryRatio: 0.7,
		SummaryLimit:   150,
	}
}

// LoadPolicy reads overrides from a .properties file. Missing keys keep their
// defaults; an empty path or unreadable file yields DefaultPolicy.
func LoadPolicy(path string) Policy {
	p := DefaultPolicy()
	if path == "" {
		return p
	}
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		logging.AppLogger.Error("Chatbot policy load error", zap.String("path", path), zap.Error(err))
		return p
	}
	return policyFromProperties(props, p)
}

func policyFromProperties(props *properties.Properties, p Policy) Policy {
	p.MinScore = props.GetInt("min_score", p.MinScore)
	p.ExactBonus = props.GetInt("exact_bonus", p.ExactBonus)
	p.TermBonus = props.GetInt("term_bonus", p.TermBonus)
	p.PartialBonus = props.GetInt("partial_bonus", p.PartialBonus)
	p.SecondaryRatio = props.GetFloat64("secondary_ratio", p.SecondaryRatio)
	p.SummaryLimit = props.GetInt("summary_limit", p.SummaryLimit)
	if p.SummaryLimit < 4 {
		p.SummaryLimit = 4
	}
	return p
}
