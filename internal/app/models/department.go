package models

// Department represents an academic department. The department ID is
// generated by the store.
type Department struct {
	DepartmentID     int64  `json:"department_id"`
	DepartmentName   string `json:"department_name"`
	HeadOfDepartment string `json:"head_of_department"`
}
