// Command seed populates a running API with sample users, courses and
// enrollments for demos and manual testing.
//
// Usage:
//
//	go run ./scripts/seed [-base http://127.0.0.1:8080]
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
)

type user struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type course struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Code  string `json:"code"`
}

type enrollment struct {
	ID       int `json:"id"`
	UserID   int `json:"user_id"`
	CourseID int `json:"course_id"`
}

func main() {
	base := flag.String("base", "http://127.0.0.1:8080", "API base URL")
	flag.Parse()

	if err := run(*base); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(base string) error {
	resp, err := http.Get(base + "/health")
	if err != nil {
		return fmt.Errorf("cannot connect to API at %s, start the server first: %w", base, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API is not healthy: %s", resp.Status)
	}

	fmt.Println("API is running. Creating sample data...")

	admin1, err := createUser(base, "Dr. Chukwu Okafor", "chukwu.okafor@university.edu", "admin")
	if err != nil {
		return err
	}
	admin2, err := createUser(base, "Prof. Amara Nwosu", "amara.nwosu@university.edu", "admin")
	if err != nil {
		return err
	}

	var students []user
	for _, s := range []struct{ name, email string }{
		{"Chioma Oluwaseun", "chioma.oluwaseun@student.edu"},
		{"Adedayo Hassan", "adedayo.hassan@student.edu"},
		{"Kunle Adeniran", "kunle.adeniran@student.edu"},
		{"Ife Adebayo", "ife.adebayo@student.edu"},
		{"Emeka Ugwu", "emeka.ugwu@student.edu"},
	} {
		student, err := createUser(base, s.name, s.email, "student")
		if err != nil {
			return err
		}
		students = append(students, student)
	}

	var courses []course
	for _, c := range []struct {
		title, code string
		adminID     int
	}{
		{"Introduction to Go Programming", "CS101", admin1.ID},
		{"Data Structures and Algorithms", "CS201", admin1.ID},
		{"Web Services in Go", "CS301", admin2.ID},
		{"Database Management Systems", "CS202", admin2.ID},
		{"Machine Learning Fundamentals", "CS401", admin1.ID},
	} {
		created, err := createCourse(base, c.title, c.code, c.adminID)
		if err != nil {
			return err
		}
		courses = append(courses, created)
	}

	pairs := [][2]int{
		{0, 0}, {0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 3}, {3, 4}, {4, 0}, {4, 4},
	}
	for _, pair := range pairs {
		if _, err := enroll(base, students[pair[0]].ID, courses[pair[1]].ID); err != nil {
			return err
		}
	}

	fmt.Println("Sample data created.")
	return nil
}

func createUser(base string, name string, email string, role string) (user, error) {
	var out user
	err := postJSON(base+"/users", map[string]any{
		"name":  name,
		"email": email,
		"role":  role,
	}, &out)
	if err != nil {
		return user{}, fmt.Errorf("create user %s: %w", name, err)
	}
	fmt.Printf("Created %s: %s (ID: %d)\n", role, name, out.ID)
	return out, nil
}

func createCourse(base string, title string, code string, adminID int) (course, error) {
	var out course
	err := postJSON(base+"/courses", map[string]any{
		"title":    title,
		"code":     code,
		"admin_id": adminID,
	}, &out)
	if err != nil {
		return course{}, fmt.Errorf("create course %s: %w", code, err)
	}
	fmt.Printf("Created course: %s (ID: %d)\n", title, out.ID)
	return out, nil
}

func enroll(base string, userID int, courseID int) (enrollment, error) {
	var out enrollment
	err := postJSON(base+"/enrollments", map[string]any{
		"user_id":   userID,
		"course_id": courseID,
	}, &out)
	if err != nil {
		return enrollment{}, fmt.Errorf("enroll user %d in course %d: %w", userID, courseID, err)
	}
	fmt.Printf("Enrolled student %d in course %d (Enrollment ID: %d)\n", userID, courseID, out.ID)
	return out, nil
}

func postJSON(url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var failure struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return fmt.Errorf("%s: %s %s", resp.Status, failure.Code, failure.Message)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
