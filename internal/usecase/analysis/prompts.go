package analysis

import "fmt"

// classifyPrefixLimit bounds how much of the transcript the classifier
// sees. The opening turns are enough to tell internal from external.
const classifyPrefixLimit = 1500

func classifyPrompt(transcriptPrefix string) string {
	return fmt.Sprintf(`
    You are a Meeting Classifier. Your task is to analyze the start of a meeting transcript to determine two things: the meeting_type and the client_name.

    - `+"`meeting_type`"+`: Must be either "internal" or "external".
    - `+"`client_name`"+`: If the meeting is external, identify the client's company name. If internal or not mentioned, use "N/A".
    - IMPORTANT: If `+"`meeting_type`"+` is 'internal', `+"`client_name`"+` MUST be 'N/A'. Only extract a `+"`client_name`"+` if `+"`meeting_type`"+` is 'external' AND an external company is clearly mentioned as the meeting's primary subject.

    **Output Format:** Your response MUST be a single, valid JSON object and nothing else.

    Here is the transcript:
    ---
    %s
    ---
    `, transcriptPrefix)
}

func cleanPrompt(rawText string) string {
	return fmt.Sprintf(`
    You are a Meticulous Editor. Your only task is to process a raw, noisy meeting transcript and clean it for clarity.
    Follow these instructions precisely:
    1.  Correct Obvious Typos.
    2.  Remove Filler Words (e.g., "um," "uh," "like," "you know").
    3.  Do Not Summarize or alter the meaning of the sentences.
    4.  IMPORTANT: Only use content from the provided transcript. Do not add any outside information.

    Here is the raw transcript to clean:
    ---
    %s
    ---
    `, rawText)
}

func extractPrompt(cleanedTranscript string) string {
	return fmt.Sprintf(`
    You are a data extraction robot. Your only job is to read a transcript and extract specific pieces of information into a valid JSON object. Do not add any conversational text or explanations.

    **Instructions:**
    1. Read the transcript provided below.
    2. Extract the following information:
      - `+"`client_name`"+`: The name of the client or project. If not mentioned, use "Unknown".
      - `+"`key_decisions`"+`: A list of all significant decisions made during the meeting.
      - `+"`action_items`"+`: A list of all tasks assigned. Each item must be an object with `+"`owner`"+`, `+"`task`"+`, and `+"`due_date`"+`. For the `+"`due_date`"+`, use the format YYYY-MM-DD if possible.
      - `+"`unanswered_questions`"+`: A list of questions that were raised but not answered.
    3. If a piece of information is not present, use an empty list `+"`[]`"+` or an appropriate default (like "N/A" for strings).
    4. IMPORTANT: If `+"`key_decisions`"+`, `+"`action_items`"+`, AND `+"`unanswered_questions`"+` are all empty lists, AND `+"`client_name`"+` is "Unknown" or "N/A", ALSO include a key `+"`\"empty_data\": true`"+` in the top-level JSON object. Otherwise, omit this key.
    5. Your final output must only be the JSON object.
    6. IMPORTANT: Only use content from the provided transcript. Do not use any outside knowledge or make up any information. If the answer is not in the text, provide an empty list or "N/A".

    Here is the cleaned transcript:
    ---
    %s
    ---
    `, cleanedTranscript)
}
