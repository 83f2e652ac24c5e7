package prompts

import (
	"fmt"
	"strings"
)

// Resume builds the ATS resume-tailoring prompt. Section order is fixed.
func Resume(in ResumeInput) string {
	skills := cleanSkills(in.Skills)
	return fmt.Sprintf(`Role: Expert Resume Writer specializing in ATS-optimized resumes

Task: Transform this resume to perfectly match the target job by emphasizing these %d key skills:
%s

Guidelines:
1. STRUCTURE: Use standard resume sections (Summary, Skills, Experience, Education)
2. RELEVANCE: Prioritize experiences demonstrating selected skills
3. QUANTIFICATION: Add metrics to achievements where possible
4. KEYWORDS: Mirror language from the job description
5. CONCISENESS: Keep to 1-2 pages worth of content
6. FORMATTING: Use clean, professional formatting with bullet points

Original Resume:
%s

Target Job Description:
%s

Generate the optimized resume following these exact sections:

[Professional Summary]
- 3-4 sentence career overview highlighting top qualifications

[Key Skills]
- 6-8 bullet points mixing selected skills and job keywords

[Professional Experience]
- For each role:
  - Company, Job Title, Dates
  - 3-5 bullet points emphasizing relevant achievements
  - Start bullets with strong action verbs
  - Include metrics (%%, $, numbers) where possible

[Education]
- Degree, Institution, Year
- Relevant coursework if entry-level

[Optional Sections]
- Certifications, Projects, or Technical Skills if space allows
`, len(skills), strings.Join(skills, ", "), clean(in.ResumeText), clean(in.JobDescription))
}

// CoverLetter builds the cover-letter prompt (Introduction, Body, Conclusion).
func CoverLetter(in CoverLetterInput) string {
	skills := cleanSkills(in.Skills)
	return fmt.Sprintf(`Role: Expert Cover Letter Writer specializing in ATS-optimized cover letters

Task: Craft a compelling cover letter to perfectly match the target job by emphasizing these %d key skills:
%s

Guidelines:
1. STRUCTURE: Use standard cover letter format (Introduction, Body, Conclusion)
2. RELEVANCE: Prioritize experiences demonstrating selected skills
3. QUANTIFICATION: Add metrics to achievements where possible
4. KEYWORDS: Mirror language from the job description
5. CONCISENESS: Keep to 1 page worth of content
6. FORMATTING: Use clean, professional formatting with paragraphs
7. PERSONALIZATION: Address the recipient by name and mention the company name

Original Resume:
%s

Target Job Description:
%s

Company Name:
%s

Recipient Name:
%s

Generate the optimized cover letter following these exact sections:

[Introduction]
- Express enthusiasm for the role and company
- Briefly introduce yourself and highlight your key qualifications

[Body]
- 2-3 paragraphs detailing relevant experiences and achievements
- Emphasize how your skills align with the job requirements
- Use specific examples and metrics to showcase your impact

[Conclusion]
- Reiterate your interest and enthusiasm
- Thank the recipient for their time and consideration
- Express your eagerness to discuss your application further
`, len(skills), strings.Join(skills, ", "), clean(in.ResumeText), clean(in.JobDescription),
		clean(in.CompanyName), clean(in.RecipientName))
}

func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = clean(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
