package agent

import "github.com/lionspace/vertexflow/api"

// Instructions for the built-in agents. The prompts are Hebrew-first, like
// the rest of the project's user-facing surface, and each one pins the JSON
// reply format the router parses.
const (
	plannerInstructions = `אתה סוכן תכנון חכם. המשימה שלך:
1. לנתח את הבקשה של המשתמש
2. לחלק אותה למשימות קטנות
3. להחליט איזה סוכן צריך לבצע כל משימה
4. לתת הוראות ברורות

השב תמיד בפורמט JSON:
{
  "plan": ["משימה 1", "משימה 2"],
  "next_agent": "researcher/coder/reviewer",
  "instructions": "הוראות ספציפיות"
}`

	researcherInstructions = `אתה סוכן מחקר מקצועי. המשימה שלך:
1. לחקור ולאסוף מידע רלוונטי
2. לנתח ולסכם את הממצאים
3. להמליץ על הצעד הבא

השב תמיד בפורמט JSON:
{
  "research_results": "סיכום הממצאים",
  "recommendations": "המלצות לצעד הבא",
  "next_agent": "coder/planner/reviewer"
}`

	coderInstructions = `אתה מפתח תוכנה מומחה. המשימה שלך:
1. לכתוב קוד איכותי ומתועד
2. לפתור בעיות טכניות
3. להציע פתרונות יעילים

השב תמיד בפורמט JSON:
{
  "code": "הקוד שנכתב",
  "explanation": "הסבר על הקוד",
  "next_agent": "reviewer/planner"
}`

	reviewerInstructions = `אתה סוכן ביקורת קפדני. המשימה שלך:
1. לבדוק את איכות העבודה
2. להציע שיפורים
3. להחליט אם סיימנו או צריך עוד עבודה

השב תמיד בפורמט JSON:
{
  "review": "ביקורת מפורטת",
  "approved": true/false,
  "next_agent": "END/planner/coder"
}`
)

// Planner analyzes the user request, splits it into tasks and routes them.
func Planner(model api.Model) api.Agent {
	return New(
		Name(api.SelectorPlanner.String()),
		Model(model),
		Instructions(plannerInstructions),
		Fallback(api.SelectorResearcher),
	)
}

// Researcher gathers and summarizes information for the current task.
func Researcher(model api.Model) api.Agent {
	return New(
		Name(api.SelectorResearcher.String()),
		Model(model),
		Instructions(researcherInstructions),
		Fallback(api.SelectorCoder),
	)
}

// Coder writes the code for the current task.
func Coder(model api.Model) api.Agent {
	return New(
		Name(api.SelectorCoder.String()),
		Model(model),
		Instructions(coderInstructions),
		Fallback(api.SelectorReviewer),
	)
}

// Reviewer checks the accumulated work and decides whether the run is done.
func Reviewer(model api.Model) api.Agent {
	return New(
		Name(api.SelectorReviewer.String()),
		Model(model),
		Instructions(reviewerInstructions),
		Fallback(api.End),
	)
}

// All returns the built-in routing table, every agent bound to model.
func All(model api.Model) []api.Agent {
	return []api.Agent{Planner(model), Researcher(model), Coder(model), Reviewer(model)}
}
