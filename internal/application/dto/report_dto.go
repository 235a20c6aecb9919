package dto

// FunctionProgressResponse progreso de capacitación agrupado por cargo.
type FunctionProgressResponse struct {
	Function             string `json:"function"`
	Area                 string `json:"area"`
	TotalEmployees       int    `json:"total_employees"`
	TotalCourses         int    `json:"total_courses"`
	CompletedCourses     int    `json:"completed_courses"`
	PendingCourses       int    `json:"pending_courses"`
	CompletionPercentage int    `json:"completion_percentage"`
}

// AreaProgressResponse progreso de capacitación agrupado por área.
type AreaProgressResponse struct {
	Area                 string `json:"area"`
	TotalEmployees       int    `json:"total_employees"`
	TotalCourses         int    `json:"total_courses"`
	CompletedCourses     int    `json:"completed_courses"`
	PendingCourses       int    `json:"pending_courses"`
	CompletionPercentage int    `json:"completion_percentage"`
}

// EmployeeCourseProgress una atribución del empleado con los datos del curso.
type EmployeeCourseProgress struct {
	AssignmentID   string `json:"assignment_id"`
	CourseID       string `json:"course_id"`
	CourseTitle    string `json:"course_title"`
	CourseArea     string `json:"course_area"`
	Status         string `json:"status"`
	CertificateURL string `json:"certificate_url,omitempty"`
}

// EmployeeProgressResponse progreso individual de un empleado.
type EmployeeProgressResponse struct {
	Employee             EmployeeResponse         `json:"employee"`
	Courses              []EmployeeCourseProgress `json:"courses"`
	TotalCourses         int                      `json:"total_courses"`
	CompletedCourses     int                      `json:"completed_courses"`
	PendingCourses       int                      `json:"pending_courses"`
	CompletionPercentage int                      `json:"completion_percentage"`
}
