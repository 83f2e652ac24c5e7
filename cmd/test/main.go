package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BerylCAtieno/docgen-agent/internal/api"
	"github.com/BerylCAtieno/docgen-agent/internal/models"
	"github.com/BerylCAtieno/docgen-agent/internal/workflow"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
)

const sampleResume = `Jane Doe
Software Engineer

Experience
- Built payment APIs in Go serving 2k requests per second
- Ran PostgreSQL and Redis on Kubernetes
- Mentored three junior engineers

Education
BSc Computer Science`

const sampleJobDescription = `We are hiring a Senior Backend Engineer to design and operate our Go
microservices on Kubernetes. You will own PostgreSQL schemas, gRPC APIs,
CI/CD pipelines and observability, and mentor other engineers.`

type TestClient struct {
	baseURL string
	client  *http.Client
	outDir  string
}

func NewTestClient(baseURL, outDir string) *TestClient {
	return &TestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			// generation calls can take a while
			Timeout: 120 * time.Second,
		},
		outDir: outDir,
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the agent")
	testType := flag.String("test", "all", "Test type: all, health, agent-card, meal-plan, resume, cover-letter, extract")
	file := flag.String("file", "", "Resume or job posting to upload (for extract test)")
	outDir := flag.String("out", "", "Directory to save generated PDFs into (optional)")
	flag.Parse()

	client := NewTestClient(*baseURL, *outDir)

	printHeader("Document Generation Agent - Test Suite")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	var ok bool
	switch *testType {
	case "all":
		client.runAllTests()
		return
	case "health":
		ok = client.testHealthCheck()
	case "agent-card":
		ok = client.testAgentCard()
	case "meal-plan":
		ok = client.testMealPlan()
	case "resume":
		ok = client.testTailoredResume()
	case "cover-letter":
		ok = client.testCoverLetter()
	case "extract":
		if *file == "" {
			printError("A file is required for the extract test. Use -file flag")
			os.Exit(1)
		}
		ok = client.testExtract(*file)
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, agent-card, meal-plan, resume, cover-letter, extract")
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}

func (tc *TestClient) runAllTests() {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"Agent Card", tc.testAgentCard},
		{"Meal Plan", tc.testMealPlan},
		{"Tailored Resume", tc.testTailoredResume},
		{"Cover Letter", tc.testCoverLetter},
		{"Invalid Selection", tc.testInvalidSelection},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	status, body, err := tc.call(http.MethodGet, "/health", nil)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}
	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testAgentCard() bool {
	printTestHeader("Testing Agent Card Endpoint")

	var card api.AgentCard
	if !tc.expect(http.MethodGet, "/.well-known/agent.json", nil, http.StatusOK, &card) {
		return false
	}
	if card.Name == "" || len(card.Skills) == 0 {
		printError("Agent card is missing its name or skills")
		return false
	}

	printSuccess(fmt.Sprintf("Agent card is valid (%d skills)", len(card.Skills)))
	for _, s := range card.Skills {
		fmt.Printf("  %s%-14s%s %s\n", colorPurple, s.ID, colorReset, s.Endpoint)
	}
	return true
}

func (tc *TestClient) testMealPlan() bool {
	printTestHeader("Testing Meal Plan Generation")

	id, ok := tc.createSession()
	if !ok {
		return false
	}

	profile := models.UserProfile{
		Age:                 34,
		Gender:              "Female",
		HeightCM:            168,
		WeightKG:            70,
		ActivityLevel:       "Moderately Active",
		PrimaryGoal:         "Weight Loss",
		DietaryRestrictions: []string{"Vegetarian"},
		FoodPreferences:     "Mediterranean, spicy food",
		MealFrequency:       "3 meals",
		SnackingHabits:      "Occasional",
		TimeConstraints:     []string{"Busy weekdays"},
		KnownAllergies:      "Peanuts",
		MedicalConditions:   []string{models.ConditionDiabetes},
		DiabetesType:        "Type 2",
		TakingInsulin:       "No",
		MealPrepTime:        "30 minutes",
		CookingSkill:        "Intermediate",
		KitchenEquipment:    []string{"Oven", "Blender"},
		PantryStaples:       "Rice, lentils, olive oil",
	}

	var resp api.MealPlanResponse
	if !tc.expect(http.MethodPost, "/api/v1/sessions/"+id+"/meal-plan", profile, http.StatusOK, &resp) {
		return false
	}
	if strings.TrimSpace(resp.Document) == "" {
		printError("Meal plan is empty")
		return false
	}

	printSuccess("Meal plan generated")
	printDocument("Meal Plan", resp.Document)
	fmt.Printf("%s%s%s\n", colorYellow, resp.Disclaimer, colorReset)
	tc.saveDownload(id, "meal-plan")
	return true
}

func (tc *TestClient) testTailoredResume() bool {
	printTestHeader("Testing Tailored Resume Flow")
	return tc.runJobFlow("resume", models.JobContext{
		ResumeText:     sampleResume,
		JobDescription: sampleJobDescription,
	})
}

func (tc *TestClient) testCoverLetter() bool {
	printTestHeader("Testing Cover Letter Flow")
	return tc.runJobFlow("cover-letter", models.JobContext{
		ResumeText:     sampleResume,
		JobDescription: sampleJobDescription,
		CompanyName:    "Acme Payments",
		RecipientName:  "Ms. Smith",
	})
}

func (tc *TestClient) runJobFlow(flow string, job models.JobContext) bool {
	id, ok := tc.createSession()
	if !ok {
		return false
	}
	base := "/api/v1/sessions/" + id + "/flows/" + flow

	var analyzed api.AnalyzeResponse
	if !tc.expect(http.MethodPost, base+"/analyze", job, http.StatusOK, &analyzed) {
		return false
	}
	printSuccess(fmt.Sprintf("Extracted %d skills", len(analyzed.Skills)))
	for i, s := range analyzed.Skills {
		fmt.Printf("  %2d. %s\n", i+1, s)
	}

	selected := analyzed.DefaultSelection
	fmt.Printf("%sSelected:%s %s\n", colorCyan, colorReset, strings.Join(selected, ", "))

	var generated api.DocumentResponse
	if !tc.expect(http.MethodPost, base+"/generate", api.GenerateRequest{SelectedSkills: selected}, http.StatusOK, &generated) {
		return false
	}

	printSuccess("Document generated")
	printDocument(flow, generated.Document)
	if generated.Download == nil {
		printError("No download link returned")
		return false
	}
	tc.saveDownload(id, flow)
	return true
}

// testInvalidSelection checks that generating with too few skills is refused.
func (tc *TestClient) testInvalidSelection() bool {
	printTestHeader("Testing Selection Below Minimum")

	id, ok := tc.createSession()
	if !ok {
		return false
	}
	base := "/api/v1/sessions/" + id + "/flows/resume"

	var analyzed api.AnalyzeResponse
	job := models.JobContext{ResumeText: sampleResume, JobDescription: sampleJobDescription}
	if !tc.expect(http.MethodPost, base+"/analyze", job, http.StatusOK, &analyzed) {
		return false
	}

	few := workflow.DefaultSelection(analyzed.Skills)
	few = few[:min(len(few), models.MinSelectedSkills-1)]

	var errResp api.ErrorResponse
	if !tc.expect(http.MethodPost, base+"/generate", api.GenerateRequest{SelectedSkills: few}, http.StatusBadRequest, &errResp) {
		return false
	}

	printSuccess(fmt.Sprintf("Rejected with %s: %s", errResp.Error.Code, errResp.Error.Message))
	return true
}

func (tc *TestClient) testExtract(path string) bool {
	printTestHeader("Testing Text Extraction")

	data, err := os.ReadFile(path)
	if err != nil {
		printError(fmt.Sprintf("Read file: %v", err))
		return false
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		printError(err.Error())
		return false
	}
	if _, err := fw.Write(data); err != nil {
		printError(err.Error())
		return false
	}
	w.Close()

	url := tc.baseURL + "/api/v1/extract"
	fmt.Printf("POST %s\n", url)
	resp, err := tc.client.Post(url, w.FormDataContentType(), &body)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		printJSON(raw)
		return false
	}

	var out api.ExtractResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	printSuccess(fmt.Sprintf("Extracted %d characters", len(out.Text)))
	printDocument("Extracted Text", out.Text)
	return true
}

func (tc *TestClient) createSession() (string, bool) {
	var resp api.SessionResponse
	if !tc.expect(http.MethodPost, "/api/v1/sessions", nil, http.StatusCreated, &resp) {
		return "", false
	}
	fmt.Printf("%sSession:%s %s\n", colorCyan, colorReset, resp.ID)
	return resp.ID, true
}

// saveDownload fetches the flow's PDF and writes it to the output directory.
func (tc *TestClient) saveDownload(id, flow string) {
	if tc.outDir == "" {
		return
	}
	status, body, err := tc.call(http.MethodGet, "/api/v1/sessions/"+id+"/flows/"+flow+"/document.pdf", nil)
	if err != nil || status != http.StatusOK {
		printError(fmt.Sprintf("PDF download failed (status %d): %v", status, err))
		return
	}
	path := filepath.Join(tc.outDir, flow+".pdf")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		printError(fmt.Sprintf("Save PDF: %v", err))
		return
	}
	printSuccess(fmt.Sprintf("Saved %s (%d bytes)", path, len(body)))
}

func (tc *TestClient) call(method, path string, payload any) (int, []byte, error) {
	url := tc.baseURL + path
	fmt.Printf("%s %s\n", method, url)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	return resp.StatusCode, raw, err
}

// expect performs the call and decodes the body into out when the status matches.
func (tc *TestClient) expect(method, path string, payload any, want int, out any) bool {
	status, body, err := tc.call(method, path, payload)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != want {
		printError(fmt.Sprintf("Expected status %d, got %d", want, status))
		printJSON(body)
		return false
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			printError(fmt.Sprintf("Invalid JSON response: %v", err))
			return false
		}
	}
	return true
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printDocument(title, text string) {
	fmt.Printf("\n%s%s:%s\n", colorGreen, title, colorReset)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(text)
	fmt.Println(strings.Repeat("=", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
		return
	}
	fmt.Printf("Response: %s\n", string(data))
}
