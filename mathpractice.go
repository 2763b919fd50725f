package lessonforge

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var problemRe = regexp.MustCompile(`(\d+)\s*([+\-×÷])\s*(\d+)`)

func generateMathPractice(r *Resource) Content {
	var problems, solutions []string

	if r.ContentText != "" {
		sentences := ExtractSentences(r.ContentText, 6)
		topics := ExtractTopics(r.ContentText, 4)

		if len(sentences) > 0 {
			numbers := ExtractNumbers(r.ContentText, 8)

			count := len(sentences)
			if count > 4 {
				count = 4
			}
			for index := 0; index < count; index++ {
				num1 := numberAt(numbers, index*2, (index+2)*5)
				num2 := numberAt(numbers, index*2+1, (index+1)*3)

				// Cycle the operation by index; operands are arranged so
				// every answer is a whole number.
				switch index % 4 {
				case 0:
					problems = append(problems, fmt.Sprintf("%d + %d = ?", num1, num2))
				case 1:
					problems = append(problems, fmt.Sprintf("%d - %d = ?", num1+num2, num2))
				case 2:
					problems = append(problems, fmt.Sprintf("%d × %d = ?", num1, num2))
				case 3:
					problems = append(problems, fmt.Sprintf("%d ÷ %d = ?", num1*num2, num2))
				}
			}

			// Solutions re-parse the problem strings so they can never
			// disagree with what is printed.
			for _, problem := range problems {
				solutions = append(solutions, solveProblem(problem))
			}
		}

		if len(problems) == 0 && len(topics) > 0 {
			for index, topic := range topics {
				if index == 4 {
					break
				}
				num1 := (index + 2) * 5
				num2 := (index + 1) * 3
				problems = append(problems, fmt.Sprintf(
					"If there are %d %s and %d more are added, how many are there in total?",
					num1, strings.Split(topic, " ")[0], num2))
				solutions = append(solutions, fmt.Sprintf("%d + %d = %d", num1, num2, num1+num2))
			}
		}
	}

	if len(problems) == 0 {
		topic := "items"
		if r.Title != "" {
			topic = strings.Split(r.Title, " ")[0]
		}

		problems = []string{
			fmt.Sprintf("If you have 12 %s and use 5, how many do you have left?", topic),
			fmt.Sprintf("There are 8 groups of %s with 4 in each group. How many are there in total?", topic),
			fmt.Sprintf("You need 24 %s and already have 15. How many more do you need?", topic),
			fmt.Sprintf("If 20 %s are shared among 5 people equally, how many does each person get?", topic),
		}
		solutions = []string{
			"12 - 5 = 7",
			"8 × 4 = 32",
			"24 - 15 = 9",
			"20 ÷ 5 = 4",
		}
	}

	return MathPracticeContent{
		Problems:  problems,
		Solutions: solutions,
	}
}

// numberAt returns the extracted number at index, or the synthesized
// fallback when not enough numbers were found in the content.
func numberAt(numbers []string, index, fallback int) int {
	if index < len(numbers) {
		if n, err := strconv.Atoi(numbers[index]); err == nil {
			return n
		}
	}
	return fallback
}

// solveProblem re-parses a generated arithmetic problem and applies its
// operator. Division operands are always constructed to divide evenly.
func solveProblem(problem string) string {
	m := problemRe.FindStringSubmatch(problem)
	if m == nil {
		return "Solution will vary"
	}

	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[3])

	var result int
	switch m[2] {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "×":
		result = a * b
	case "÷":
		if b == 0 {
			return "Solution will vary"
		}
		result = a / b
	}

	return fmt.Sprintf("%d %s %d = %d", a, m[2], b, result)
}
