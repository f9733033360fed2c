package tutor

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/vibeterms/internal/models"
)

// Fixed user-facing messages returned in place of a model answer.
const (
	MsgNoCredential     = "API 키가 설정되지 않았습니다. 우측 상단 설정 버튼을 눌러 키를 입력해주세요."
	MsgConnectionFailed = "AI 연결에 실패했습니다. API 키를 확인하거나 잠시 후 다시 시도해주세요."
	MsgEmptyExplanation = "죄송합니다. 설명을 불러오는 데 실패했습니다."

	MsgGenerateNoCredential = "새로운 용어를 생성하려면 설정에서 API 키를 입력해주세요!"
	MsgGenerateFailed       = "용어 생성에 실패했습니다. 올바른 단어인지 확인해보세요."
)

func buildQuestionPrompt(term models.Term, question string) string {
	return fmt.Sprintf(`단어: "%s"
사용자 질문: "%s"

당신은 "친절한 IT 선생님"입니다. 개발 지식이 없는 초보자에게 이 단어에 대해 사용자의 질문에 맞춰 설명해주세요.
어려운 용어는 피하고, 일상적인 비유를 들어주세요. 말투는 친절하고 격려하는 톤으로 해주세요.
`, term.Word, question)
}

func buildDeepDivePrompt(term models.Term) string {
	return fmt.Sprintf(`단어: "%s" (카테고리: %s)

당신은 "친절한 IT 선생님"입니다. 개발 지식이 없는 초보자가 이 단어를 이해할 수 있도록 도와주세요.
1. 이 단어가 실제 개발 현장에서 구체적으로 어떻게 쓰이는지 예시 상황을 하나 들어주세요.
2. 이 단어와 관련된 초보자가 자주 하는 실수나 오해를 하나 알려주세요.
3. 이 기술/개념을 AI에게 시킬 때 쓸 수 있는 아주 구체적인 프롬프트 템플릿을 하나 더 만들어주세요.

말투는 친절하고 정중하게(해요체) 해주세요. 마크다운을 사용해서 가독성 있게 꾸며주세요.
`, term.Word, term.Category)
}

func buildTermPrompt(keyword string) string {
	labels := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		labels = append(labels, "'"+string(c)+"'")
	}

	return fmt.Sprintf(`"%s"라는 개발/IT 용어에 대한 설명을 초보자(Non-tech) 눈높이에서 작성해줘.
JSON 형식으로 반환해야 해.

Category는 다음 중 하나를 골라: %s.

fields:
- word: 용어 이름 (한글 포함)
- category: 위 카테고리 중 1개
- definition: 사전적 정의 (1-2문장)
- simpleExplanation: 초등학생도 이해할 수 있는 쉬운 설명
- analogy: 실생활 비유 (가장 중요한 부분)
- examplePrompt: 이 개념을 AI에게 요청할 때 쓸 수 있는 구체적인 프롬프트 예시
- tags: 관련 태그 3개 배열
`, keyword, strings.Join(labels, ", "))
}
