package file

// rawQuestion mirrors one entry of the "questions" list as it appears on the
// wire. It uses "mapstructure" tags so the same shape decodes from both JSON
// and YAML payloads.
type rawQuestion struct {
	ID        string        `mapstructure:"id"`
	Text      string        `mapstructure:"text"`
	Kind      string        `mapstructure:"kind"`
	Choices   []string      `mapstructure:"choices"`
	Condition *rawCondition `mapstructure:"condition"`
}

// rawCondition keeps expectedAnswer loosely typed: documents may write a
// single string or a list of strings.
type rawCondition struct {
	QuestionID     string `mapstructure:"questionId"`
	ExpectedAnswer any    `mapstructure:"expectedAnswer"`
}
