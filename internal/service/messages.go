package service

import (
	"fmt"
	"learning_portal_backend/internal/model"
	"strconv"
	"time"
)

const signature = "\n\n- The Portal Team"

func formatDue(t time.Time) string {
	return t.UTC().Format("Mon, 02 Jan 2006 15:04 MST")
}

func welcomeEmail(user *model.User) (string, string) {
	return "Welcome to Student-Teacher Portal",
		fmt.Sprintf("Hi %s,\n\nYou have successfully registered as a student in our portal.\n\nHappy learning!%s", user.Name, signature)
}

func resetRequestEmail(user *model.User, link string) (string, string) {
	return "Password Reset Request",
		fmt.Sprintf("Hi %s,\n\nClick the link to reset your password: %s\n\nThis link will expire in 10 minutes.%s", user.Name, link, signature)
}

func resetDoneEmail(user *model.User) (string, string) {
	return "Password Reset Successful",
		fmt.Sprintf("Hi %s,\n\nYour password has been successfully reset. If you did not perform this action, please contact support immediately.%s", user.Name, signature)
}

func approvedEmail(user *model.User) (string, string) {
	return "Account Approved",
		fmt.Sprintf("Hello %s, your teacher account has been approved. You can now log in.", user.Name)
}

func declinedEmail(user *model.User) (string, string) {
	return "Account Declined",
		fmt.Sprintf("Hello %s, your teacher account request has been declined. Please contact support for more information.", user.Name)
}

func promotedEmail(user *model.User) (string, string) {
	return "Promoted to Admin",
		fmt.Sprintf("Hello %s, you have been promoted to admin. You now have admin privileges.", user.Name)
}

func enrolledEmail(student *model.User, course *model.Course) (string, string) {
	return "Enrollment Confirmation",
		fmt.Sprintf("Hi %s,\n\nYou have successfully enrolled in the course %q.", student.Name, course.Title)
}

func enrolledTeacherNotice(student *model.User, course *model.Course) string {
	name := student.Name
	if name == "" {
		name = "A student"
	}
	return fmt.Sprintf("Student %s enrolled in your course %q.", name, course.Title)
}

func enrolledStudentNotice(course *model.Course) string {
	return fmt.Sprintf("You have successfully enrolled in the course %q.", course.Title)
}

func newAssignmentNotice(assignment *model.Assignment, course *model.Course) string {
	return fmt.Sprintf("New assignment %q posted in course %q", assignment.Title, course.Title)
}

func newAssignmentEmail(student *model.User, assignment *model.Assignment, course *model.Course) (string, string) {
	return "New Assignment Posted",
		fmt.Sprintf("Hello %s,\n\nA new assignment titled %q has been posted in your course %q.\n\nDue Date: %s\n\nLogin to your portal to view more details.",
			student.Name, assignment.Title, course.Title, formatDue(assignment.DueDate))
}

func submittedNotice(assignment *model.Assignment) string {
	return fmt.Sprintf("You have successfully submitted the assignment %q.", assignment.Title)
}

func submittedEmail(student *model.User, assignment *model.Assignment) (string, string) {
	return "Assignment Submission Confirmation",
		fmt.Sprintf("Hi %s,\n\nYou have successfully submitted your assignment: %q.\n\nKeep up the good work!", student.Name, assignment.Title)
}

func formatGrade(grade *float64) string {
	if grade == nil {
		return "-"
	}
	return strconv.FormatFloat(*grade, 'f', -1, 64)
}

func gradedNotice(assignment *model.Assignment, grade *float64) string {
	return fmt.Sprintf("Your assignment %q has been graded: %s", assignment.Title, formatGrade(grade))
}

func gradedEmail(student *model.User, assignment *model.Assignment, grade *float64, feedback string) (string, string) {
	if feedback == "" {
		feedback = "No feedback"
	}
	return fmt.Sprintf("Your assignment %q has been graded", assignment.Title),
		fmt.Sprintf("Hello %s,\n\nYour assignment has been graded.\n\nGrade: %s\nFeedback: %s\n\nRegards,\nStudent-Teacher Portal",
			student.Name, formatGrade(grade), feedback)
}

func reminderNotice(assignment *model.Assignment) string {
	return fmt.Sprintf("Reminder: Assignment %q is due on %s", assignment.Title, formatDue(assignment.DueDate))
}

func reminderEmail(student *model.User, assignment *model.Assignment) (string, string) {
	return fmt.Sprintf("Reminder: Assignment %q due soon", assignment.Title),
		fmt.Sprintf("Hi %s,\n\nThis is a reminder that your assignment %q is due on %s.\n\nPlease submit it before the deadline.",
			student.Name, assignment.Title, formatDue(assignment.DueDate))
}
