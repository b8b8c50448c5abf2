package csparser

import (
	"strings"

	"view-scaffold/internal/logger"
	"view-scaffold/internal/model"
)

// Two-tier lookup: annotation keywords first, declared-type keywords
// second. An annotation expresses author intent and must override a
// structural type guess. Within each table, first match wins.

type kindRule struct {
	keyword string
	kind    model.InputKind
}

// attributeKindTable is checked against the joined annotation text,
// case-insensitive substring. [EmailAddress], [DataType(DataType.Password)],
// [Phone], [Url] and friends all land here.
var attributeKindTable = []kindRule{
	{"email", model.KindEmail},
	{"phone", model.KindPhone},
	{"password", model.KindPassword},
	{"url", model.KindURL},
	{"color", model.KindColor},
	{"range", model.KindRange},
	{"file", model.KindFile},
	{"hidden", model.KindHidden},
}

// typeKindTable maps declared-type keywords to input kinds. Temporal
// types are ordered most-specific first so "datetimeoffset" is not
// swallowed by "date".
var typeKindTable = []kindRule{
	{"datetimeoffset", model.KindDateTime},
	{"datetime", model.KindDateTime},
	{"dateonly", model.KindDate},
	{"timeonly", model.KindTime},
	{"timespan", model.KindTime},
	{"decimal", model.KindNumber},
	{"double", model.KindNumber},
	{"float", model.KindNumber},
	{"long", model.KindNumber},
	{"short", model.KindNumber},
	{"byte", model.KindNumber},
	{"int", model.KindNumber},
	{"bool", model.KindCheckbox},
}

// KindFor assigns the semantic input kind for a property. It is total:
// no annotation or type match falls back to plain text. The silent
// fallback is surfaced as a DEBUG diagnostic so unmapped types can be
// audited from the log file without noising the console.
func KindFor(p model.Property) model.InputKind {
	joined := strings.ToLower(strings.Join(p.Attributes, " "))
	for _, rule := range attributeKindTable {
		if strings.Contains(joined, rule.keyword) {
			return rule.kind
		}
	}

	declared := strings.ToLower(strings.TrimSuffix(p.DeclaredType, "?"))
	for _, rule := range typeKindTable {
		if strings.Contains(declared, rule.keyword) {
			return rule.kind
		}
	}

	if declared != "string" && declared != "char" {
		logger.Debug("[KIND] No input-kind mapping for type %q (property %s), defaulting to text", p.DeclaredType, p.Name)
	}
	return model.KindText
}
