package domain

type User struct {
	ID            int32  `json:"id"`
	Email         string `json:"email"`
	PasswordHash  string `json:"-"`
	Nickname      string `json:"nickname"`
	Department    string `json:"department"`
	StudentNumber string `json:"student_number"`
	PhoneNumber   string `json:"phone_num"`
	CreatedOn     string `json:"created_on"`
	UpdatedOn     string `json:"updated_on"`
}
