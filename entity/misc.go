package entity

import (
	"github.com/programme-lv/console/normalize"
)

// JudgeServer is one row of the judge fleet status table.
type JudgeServer struct {
	ID            int
	Hostname      string
	JudgerVersion string
	CPUCore       int
	CPUUsage      float64
	MemoryUsage   float64
	LastHeartbeat string
	TaskNumber    int
	ServiceURL    string
	Disabled      bool
	Status        string
}

func AdaptJudgeServer(raw any) JudgeServer {
	js := JudgeServer{}
	obj, ok := normalize.AsObject(raw)
	if !ok {
		return js
	}
	js.ID = intField(obj, 0, "id", "ID")
	js.Hostname = strField(obj, "", "hostname", "Hostname")
	js.JudgerVersion = strField(obj, "", "judgerVersion", "judger_version")
	js.CPUCore = intField(obj, 0, "cpuCore", "cpu_core")
	js.CPUUsage = numField(obj, 0, "cpuUsage", "cpu_usage")
	js.MemoryUsage = numField(obj, 0, "memoryUsage", "memory_usage")
	js.LastHeartbeat = strField(obj, "", "lastHeartbeat", "last_heartbeat")
	js.TaskNumber = intField(obj, 0, "taskNumber", "task_number")
	js.ServiceURL = strField(obj, "", "serviceUrl", "service_url")
	js.Disabled = boolField(obj, false, "isDisabled", "is_disabled", "disabled")
	js.Status = strField(obj, "", "status", "Status")
	return js
}

func AdaptJudgeServers(raw any) []JudgeServer {
	arr, _ := normalize.AsArray(raw)
	res := make([]JudgeServer, 0, len(arr))
	for _, item := range arr {
		res = append(res, AdaptJudgeServer(item))
	}
	return res
}

type User struct {
	ID         int
	Username   string
	Email      string
	RealName   string
	AdminType  string
	Disabled   bool
	CreateTime string
	LastLogin  string
}

func AdaptUser(raw any) User {
	u := User{}
	obj, ok := normalize.AsObject(raw)
	if !ok {
		return u
	}
	u.ID = intField(obj, 0, "id", "ID")
	u.Username = strField(obj, "", "username", "Username")
	u.Email = strField(obj, "", "email", "Email")
	u.RealName = strField(obj, "", "realName", "real_name")
	u.AdminType = strField(obj, "", "adminType", "admin_type")
	u.Disabled = boolField(obj, false, "isDisabled", "is_disabled", "disabled")
	u.CreateTime = strField(obj, "", "createTime", "create_time")
	u.LastLogin = strField(obj, "", "lastLogin", "last_login")
	return u
}

func AdaptUsers(raw any) []User {
	arr, _ := normalize.AsArray(raw)
	res := make([]User, 0, len(arr))
	for _, item := range arr {
		res = append(res, AdaptUser(item))
	}
	return res
}

// Organization is a microservice-side group that owns workbooks.
type Organization struct {
	ID          int
	Name        string
	Description string
	MemberCount int
	CreateTime  string
}

func AdaptOrganization(raw any) Organization {
	o := Organization{}
	obj, ok := normalize.AsObject(raw)
	if !ok {
		return o
	}
	o.ID = intField(obj, 0, "id", "ID")
	o.Name = strField(obj, "", "name", "Name", "title")
	o.Description = strField(obj, "", "description", "Description")
	o.MemberCount = intField(obj, 0, "memberCount", "member_count")
	o.CreateTime = strField(obj, "", "createTime", "create_time", "createdAt", "created_at")
	return o
}

func AdaptOrganizations(raw any) []Organization {
	arr, _ := normalize.AsArray(raw)
	res := make([]Organization, 0, len(arr))
	for _, item := range arr {
		res = append(res, AdaptOrganization(item))
	}
	return res
}

// Profile is the my-page view of the signed-in user.
type Profile struct {
	User         User
	School       string
	Major        string
	Mood         string
	AcceptedNum  int
	SubmissionNum int
	Avatar       string
}

func AdaptProfile(raw any) Profile {
	p := Profile{}
	obj, ok := normalize.AsObject(raw)
	if !ok {
		return p
	}
	if v, ok := normalize.FirstPresent(obj, "user", "User"); ok {
		p.User = AdaptUser(v)
	} else {
		p.User = AdaptUser(raw)
	}
	p.School = strField(obj, "", "school", "School")
	p.Major = strField(obj, "", "major", "Major")
	p.Mood = strField(obj, "", "mood", "Mood")
	p.AcceptedNum = intField(obj, 0, "acceptedNumber", "accepted_number")
	p.SubmissionNum = intField(obj, 0, "submissionNumber", "submission_number")
	p.Avatar = strField(obj, "", "avatar", "Avatar")
	return p
}

// Submission is one row of the submissions table on the my-page.
type Submission struct {
	ID         string
	ProblemID  string
	Username   string
	Language   string
	Result     int
	CreateTime string
}

func AdaptSubmission(raw any) Submission {
	s := Submission{}
	obj, ok := normalize.AsObject(raw)
	if !ok {
		return s
	}
	s.ID = strField(obj, "", "id", "ID")
	s.ProblemID = strField(obj, "", "problem", "problemId", "problem_id")
	s.Username = strField(obj, "", "username", "Username")
	s.Language = strField(obj, "", "language", "Language")
	s.Result = intField(obj, 0, "result", "Result")
	s.CreateTime = strField(obj, "", "createTime", "create_time")
	return s
}

func AdaptSubmissions(raw any) []Submission {
	arr, _ := normalize.AsArray(raw)
	res := make([]Submission, 0, len(arr))
	for _, item := range arr {
		res = append(res, AdaptSubmission(item))
	}
	return res
}

func numField(obj map[string]any, fallback float64, keys ...string) float64 {
	v, ok := normalize.FirstPresent(obj, keys...)
	if !ok {
		return fallback
	}
	return normalize.NumOr(v, fallback)
}
