// internal/trivia/questions.go
package trivia

import "github.com/codeuno/server/internal/models"

// challengeBank holds the built-in fill-in-the-blank questions per
// language. Prompts render as prompt_start + answer + prompt_end.
var challengeBank = map[string][]models.Challenge{
	"python": {
		{ID: "py-1", Language: "python", PromptStart: "def greet():\n    ", PromptEnd: "(\"hello\")", Answer: "print", Difficulty: "easy"},
		{ID: "py-2", Language: "python", PromptStart: "numbers = [1, 2, 3]\ntotal = ", PromptEnd: "(numbers)", Answer: "sum", Difficulty: "easy"},
		{ID: "py-3", Language: "python", PromptStart: "for i in ", PromptEnd: "(10):\n    print(i)", Answer: "range", Difficulty: "easy"},
		{ID: "py-4", Language: "python", PromptStart: "with ", PromptEnd: "(\"data.txt\") as f:\n    text = f.read()", Answer: "open", Difficulty: "intermediate"},
		{ID: "py-5", Language: "python", PromptStart: "squares = [x ** 2 ", PromptEnd: " x in range(5)]", Answer: "for", Difficulty: "intermediate"},
		{ID: "py-6", Language: "python", PromptStart: "class Dog:\n    def ", PromptEnd: "(self, name):\n        self.name = name", Answer: "__init__", Difficulty: "difficult"},
	},
	"java": {
		{ID: "java-1", Language: "java", PromptStart: "System.out.", PromptEnd: "(\"hello\");", Answer: "println", Difficulty: "easy"},
		{ID: "java-2", Language: "java", PromptStart: "public static ", PromptEnd: " main(String[] args) {}", Answer: "void", Difficulty: "easy"},
		{ID: "java-3", Language: "java", PromptStart: "List<String> names = new ", PromptEnd: "<>();", Answer: "ArrayList", Difficulty: "intermediate"},
		{ID: "java-4", Language: "java", PromptStart: "try {\n    risky();\n} ", PromptEnd: " (Exception e) {}", Answer: "catch", Difficulty: "intermediate"},
		{ID: "java-5", Language: "java", PromptStart: "public class Cat ", PromptEnd: " Animal {}", Answer: "extends", Difficulty: "difficult"},
	},
	"c": {
		{ID: "c-1", Language: "c", PromptStart: "", PromptEnd: "(\"hello\\n\");", Answer: "printf", Difficulty: "easy"},
		{ID: "c-2", Language: "c", PromptStart: "int *p = ", PromptEnd: "(sizeof(int) * 10);", Answer: "malloc", Difficulty: "intermediate"},
		{ID: "c-3", Language: "c", PromptStart: "#", PromptEnd: " <stdio.h>", Answer: "include", Difficulty: "easy"},
		{ID: "c-4", Language: "c", PromptStart: "struct point { int x; int y; };\ntypedef ", PromptEnd: " point point_t;", Answer: "struct", Difficulty: "difficult"},
	},
}
