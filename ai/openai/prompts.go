package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/resound/ai"
)

const extractionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "entities": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {
            "type": "string"
          },
          "type": {
            "type": "string"
          },
          "portrait": {
            "type": "string"
          },
          "quotes": {
            "type": "array",
            "items": {
              "type": "string"
            }
          }
        },
        "required": ["name", "type", "portrait", "quotes"],
        "additionalProperties": false
      }
    }
  },
  "required": ["entities"],
  "additionalProperties": false
}`

const extractionPromptTemplate = `Extract the named entities from the given conversation transcript and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Name is the entity exactly as it should be remembered. Use the most complete form that appears
  in the transcript. Do not change its capitalization or spelling.
- Type field must match exactly one of the listed values: %s.
- Portrait is one or two sentences describing the entity based only on what the transcript says about it.
- Quotes is a list of verbatim excerpts from the transcript where the entity appears or is discussed.
  Copy the text exactly; do not paraphrase.
- Include only entities that are explicitly mentioned in the transcript. Do not hallucinate.
- If no entities can be identified, return "entities": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Speaker 1: I met Alice at the Riverside Cafe yesterday. Speaker 2: Oh, how is she doing at Acme Corp?"
Output:
{
  "entities": [
    {"name":"Alice","type":"person","portrait":"An acquaintance of the first speaker who works at Acme Corp.","quotes":["I met Alice at the Riverside Cafe yesterday","how is she doing at Acme Corp"]},
    {"name":"Riverside Cafe","type":"place","portrait":"A cafe where the first speaker met Alice.","quotes":["I met Alice at the Riverside Cafe yesterday"]},
    {"name":"Acme Corp","type":"organization","portrait":"The company where Alice works.","quotes":["how is she doing at Acme Corp"]}
  ]
}`

const compilationResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "title": {
      "type": "string"
    },
    "summary": {
      "type": "string"
    },
    "moments": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "quote": {
            "type": "string"
          },
          "context": {
            "type": "string"
          },
          "significance": {
            "type": "string"
          }
        },
        "required": ["quote", "context", "significance"],
        "additionalProperties": false
      }
    }
  },
  "required": ["title", "summary", "moments"],
  "additionalProperties": false
}`

const compilationPromptTemplate = `Compile the given conversation transcript into a structured memory and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Title is a short, specific headline for the conversation, at most ten words.
- Summary is one paragraph capturing what happened, who was involved, and what was decided or learned.
- Moments are the most notable exchanges, in the order they occurred. Quote is a verbatim excerpt
  from the transcript; context explains what was happening around it; significance explains why it matters.
- Include at most five moments. If the transcript contains nothing notable, return "moments": [].
- Base everything only on the transcript. Do not hallucinate.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

// buildExtractionPrompt creates the entity extraction system prompt with
// entity types embedded.
func buildExtractionPrompt() string {
	return fmt.Sprintf(extractionPromptTemplate,
		extractionResponseSchema,
		strings.Join(ai.EntityTypes, ", "))
}

// buildCompilationPrompt creates the memory compilation system prompt.
func buildCompilationPrompt() string {
	return fmt.Sprintf(compilationPromptTemplate, compilationResponseSchema)
}
