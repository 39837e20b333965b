package domain

type ValidationRule struct {
	Action       string
	Params       RuleParams
	ErrorMessage string
}

func NewValidationRule(kind RuleKind) ValidationRule {
	return ValidationRule{
		Action: kind.Key,
		Params: kind.DefaultParams(),
	}
}

func (r ValidationRule) Clone() ValidationRule {
	result := r
	result.Params = r.Params.Clone()
	return result
}
