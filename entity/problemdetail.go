package entity

import (
	"github.com/programme-lv/console/normalize"
)

type Sample struct {
	Input  string
	Output string
}

type TestCaseScore struct {
	InputName  string
	OutputName string
	Score      int
}

// IOMode describes how a submission reads input and writes output.
type IOMode struct {
	IOMode string
	Input  string
	Output string
}

// DefaultIOMode is substituted when the backend omits the io_mode object.
func DefaultIOMode() IOMode {
	return IOMode{IOMode: "standard", Input: "input.txt", Output: "output.txt"}
}

// ProblemDetail is the admin edit view of a problem: everything Problem
// has plus the fields only the problem editor touches.
type ProblemDetail struct {
	Problem

	Samples       []Sample
	TestCaseID    string
	TestCaseScore []TestCaseScore
	Template      map[string]string
	IOMode        IOMode
	SPJ           bool
	SPJLanguage   string
	SPJCode       string
	Hint          string
	Source        string
}

// AdaptProblemDetail builds the admin edit view out of a raw payload.
// Visibility and difficulty follow the same rules as AdaptProblem.
func AdaptProblemDetail(raw any) ProblemDetail {
	d := ProblemDetail{
		Problem:       AdaptProblem(raw),
		Samples:       []Sample{},
		TestCaseScore: []TestCaseScore{},
		Template:      map[string]string{},
		IOMode:        DefaultIOMode(),
	}
	obj, ok := normalize.AsObject(raw)
	if !ok {
		return d
	}

	if v, ok := normalize.FirstPresent(obj, "samples", "Samples"); ok {
		d.Samples = adaptSamples(v)
	}
	d.TestCaseID = strField(obj, "", "testCaseId", "test_case_id")
	if v, ok := normalize.FirstPresent(obj, "testCaseScore", "test_case_score"); ok {
		d.TestCaseScore = adaptTestCaseScores(v)
	}
	if v, ok := normalize.FirstPresent(obj, "template", "Template"); ok {
		d.Template = adaptTemplate(v)
	}
	if v, ok := normalize.FirstPresent(obj, "ioMode", "io_mode"); ok {
		d.IOMode = adaptIOMode(v)
	}
	d.SPJ = boolField(obj, false, "spj", "is_spj")
	d.SPJLanguage = strField(obj, "", "spjLanguage", "spj_language")
	d.SPJCode = strField(obj, "", "spjCode", "spj_code")
	d.Hint = strField(obj, "", "hint", "Hint")
	d.Source = strField(obj, "", "source", "Source")

	return d
}

func adaptSamples(v any) []Sample {
	res := []Sample{}
	arr, ok := normalize.AsArray(v)
	if !ok {
		return res
	}
	for _, item := range arr {
		obj, ok := normalize.AsObject(item)
		if !ok {
			continue
		}
		res = append(res, Sample{
			Input:  strField(obj, "", "input", "Input"),
			Output: strField(obj, "", "output", "Output"),
		})
	}
	return res
}

func adaptTestCaseScores(v any) []TestCaseScore {
	res := []TestCaseScore{}
	arr, ok := normalize.AsArray(v)
	if !ok {
		return res
	}
	for _, item := range arr {
		obj, ok := normalize.AsObject(item)
		if !ok {
			continue
		}
		res = append(res, TestCaseScore{
			InputName:  strField(obj, "", "input_name", "inputName"),
			OutputName: strField(obj, "", "output_name", "outputName"),
			Score:      intField(obj, 0, "score", "Score"),
		})
	}
	return res
}

func adaptTemplate(v any) map[string]string {
	res := map[string]string{}
	obj, ok := normalize.AsObject(v)
	if !ok {
		return res
	}
	for lang, snippet := range obj {
		if s, ok := snippet.(string); ok {
			res[lang] = s
		}
	}
	return res
}

func adaptIOMode(v any) IOMode {
	mode := DefaultIOMode()
	obj, ok := normalize.AsObject(v)
	if !ok {
		return mode
	}
	mode.IOMode = strField(obj, mode.IOMode, "io_mode", "ioMode")
	mode.Input = strField(obj, mode.Input, "input", "Input")
	mode.Output = strField(obj, mode.Output, "output", "Output")
	return mode
}
