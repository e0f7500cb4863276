package domain

type Club struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Location     string `json:"locate"`
	LogoImgPath  string `json:"logo_img_path"`
	MainCategory string `json:"main_category"`
	SubCategory  string `json:"sub_category"`
	IsRecruiting bool   `json:"is_recruiting"`
}

// RecruitingStatus is the human readable result of toggling a club's recruiting flag.
type RecruitingStatus struct {
	IsRecruiting bool   `json:"is_recruiting"`
	Message      string `json:"message"`
}

func NewRecruitingStatus(isRecruiting bool) RecruitingStatus {
	if isRecruiting {
		return RecruitingStatus{IsRecruiting: true, Message: "club recruiting has started"}
	}
	return RecruitingStatus{IsRecruiting: false, Message: "club recruiting has ended"}
}
