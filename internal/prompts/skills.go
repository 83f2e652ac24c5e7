package prompts

import (
	"fmt"

	"github.com/BerylCAtieno/docgen-agent/internal/models"
)

// SkillExtraction asks for the top models.MaxSkills skills as a bare numbered list.
func SkillExtraction(jobDescription string) string {
	return fmt.Sprintf(`Analyze the following job description and extract exactly the top %[1]d most critical skills
that candidates must possess, ordered by importance. Focus on:

1. Technical/hard skills specific to the role
2. Industry-specific knowledge
3. Key soft skills mentioned
4. Tools/technologies required

Present ONLY as a numbered list (1-%[1]d) without additional commentary.
Each line must have the form "<number>. <skill>".

Job Description:
%[2]s
`, models.MaxSkills, clean(jobDescription))
}
