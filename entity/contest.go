package entity

import (
	"github.com/programme-lv/console/normalize"
)

type RuleType string

const (
	RuleTypeACM RuleType = "ACM"
	RuleTypeOI  RuleType = "OI"
)

type ContestAuthor struct {
	ID       int
	Username string
	RealName string
}

type Contest struct {
	ID              int
	Title           string
	Description     string
	StartTime       string
	EndTime         string
	CreateTime      string
	RuleType        RuleType
	Visible         bool
	RealTimeRank    bool
	AllowedIPRanges []string
	Password        *string
	Status          string
	CreatedBy       *ContestAuthor
}

// AdaptContest builds a canonical Contest. Unknown rule types fall back
// to ACM. Password stays nil unless the backend sent a string, so the
// editor can tell "no password" apart from "empty password".
func AdaptContest(raw any) Contest {
	c := Contest{
		RuleType:        RuleTypeACM,
		AllowedIPRanges: []string{},
	}
	obj, ok := normalize.AsObject(raw)
	if !ok {
		return c
	}

	c.ID = intField(obj, 0, "id", "ID")
	c.Title = strField(obj, "", "title", "Title")
	c.Description = strField(obj, "", "description", "Description")
	c.StartTime = strField(obj, "", "startTime", "start_time")
	c.EndTime = strField(obj, "", "endTime", "end_time")
	c.CreateTime = strField(obj, "", "createTime", "create_time")
	c.Status = strField(obj, "", "status", "Status")

	if strField(obj, "", "ruleType", "rule_type") == string(RuleTypeOI) {
		c.RuleType = RuleTypeOI
	}
	c.Visible = adaptVisible(obj)
	c.RealTimeRank = boolField(obj, false, "realTimeRank", "real_time_rank")
	if v, ok := normalize.FirstPresent(obj, "allowedIpRanges", "allowed_ip_ranges"); ok {
		c.AllowedIPRanges = normalize.StrSlice(v)
	}
	if v, ok := normalize.FirstPresent(obj, "password", "Password"); ok {
		if s, isStr := v.(string); isStr {
			c.Password = &s
		}
	}
	if v, ok := normalize.FirstPresent(obj, "createdBy", "created_by"); ok {
		if author, isObj := normalize.AsObject(v); isObj {
			c.CreatedBy = &ContestAuthor{
				ID:       intField(author, 0, "id", "ID"),
				Username: strField(author, "", "username", "Username"),
				RealName: strField(author, "", "realName", "real_name"),
			}
		}
	}

	return c
}

func AdaptContests(raw any) []Contest {
	arr, _ := normalize.AsArray(raw)
	res := make([]Contest, 0, len(arr))
	for _, item := range arr {
		res = append(res, AdaptContest(item))
	}
	return res
}
