package rubric

import "strings"

// roleTipFlavors returns per-dimension tip suffixes tailored to the target
// role family. Only dimensions present in the map get role wording.
func roleTipFlavors(targetRole string) map[string]string {
	role := strings.ToLower(targetRole)
	switch {
	case strings.Contains(role, "data") || strings.Contains(role, "machine learning"):
		return map[string]string{
			DimQuantified:  "For data roles, cite model metrics such as accuracy, F1 or AUC.",
			DimATSKeywords: "Name the analysis stack explicitly: Python, Pandas, SQL, scikit-learn.",
		}
	case strings.Contains(role, "frontend") || strings.Contains(role, "full stack"):
		return map[string]string{
			DimContactInfo: "Frontend reviewers expect live project or portfolio links.",
			DimATSKeywords: "Spell out the UI stack: JavaScript, TypeScript, React, CSS.",
		}
	case strings.Contains(role, "devops"):
		return map[string]string{
			DimQuantified:  "DevOps resumes land with uptime, cost or deployment-frequency numbers.",
			DimATSKeywords: "List platform keywords: Docker, Kubernetes, Terraform, AWS.",
		}
	case strings.Contains(role, "backend"):
		return map[string]string{
			DimQuantified:  "Backend achievements carry scale: requests handled, latency cut, users served.",
			DimATSKeywords: "Cover API, database and infrastructure keywords the posting uses.",
		}
	default:
		return map[string]string{}
	}
}
