package gemini

import "google.golang.org/genai"

const (
	chatInstruction = "You are an expert Chartered Accountant assistant. You provide accurate, professional, " +
		"and concise answers regarding tax laws, accounting standards (IFRS/GAAP), and compliance. " +
		"Always cite sources when possible."

	advisoryInstruction = "You are a senior strategic financial advisor. You analyze complex business scenarios, " +
		"mergers, audits, and ethical dilemmas with deep reasoning. Break down the problem, analyze implications, " +
		"and provide a structured recommendation."

	extractionPrompt = "Analyze the following financial text/data and extract key metrics into a JSON format " +
		"suitable for a bar chart (categories and numerical values). Also provide a brief textual executive summary. " +
		"Input Data: "
)

// seriesSchema constrains extraction output to {summary, data[{category, value}]}.
var seriesSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {Type: genai.TypeString},
		"data": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {Type: genai.TypeString},
					"value":    {Type: genai.TypeNumber},
				},
			},
		},
	},
	Required: []string{"summary", "data"},
}
