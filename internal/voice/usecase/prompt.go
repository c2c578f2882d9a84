package usecase

import (
	"fmt"

	"cloud.google.com/go/civil"
)

const extractionSystemPrompt = `You extract reminders from short dictated notes. The note may be in any language, most often Finnish or English.

Return ONLY a JSON object with exactly these keys:
{"message": string, "date": "YYYY-MM-DD" or null, "time": "HH:MM" or null}

Rules:
- message: the note itself, word for word and in the original language, with only the date and time phrases removed. Do not translate, summarise or rephrase. Fix capitalisation only.
- date: resolve relative days against the date given as "Today is". today/tänään = +0 days, tomorrow/huomenna = +1, day after tomorrow/ylihuomenna = +2, next week/ensi viikolla = +7. A weekday means its next occurrence after today. If no date is mentioned, use null.
- time: 24-hour "HH:MM". noon/keskipäivä = 12:00, midnight = 00:00. "half H" / "puoli H" means thirty minutes BEFORE hour H, so "half two" and "puoli kaksi" are 13:30 and "puoli kahdeksan illalla" is 19:30. Morning words (morning, aamulla, aamupäivällä, am) keep hours before noon; afternoon or evening words (afternoon, evening, iltapäivällä, illalla, pm) move them after noon. A bare hour from 1 to 7 without such a word is afternoon. If no time is mentioned, use null.
- Never invent a date or time that the note does not mention.

Examples (Today is 2026-02-19):
"Muista ostaa maitoa huomenna puoli kaksi" -> {"message":"Muista ostaa maitoa","date":"2026-02-20","time":"13:30"}
"call the dentist at noon" -> {"message":"Call the dentist","date":null,"time":"12:00"}
"buy milk" -> {"message":"Buy milk","date":null,"time":null}`

// buildUserMessage formats the transcript together with the date context.
func buildUserMessage(text string, today civil.Date) string {
	return fmt.Sprintf("Today is %s.\n\nText: %q", today, text)
}
