package catalog

import "github.com/bobmcallan/vibeterms/internal/models"

// defaultTerms is the shipped glossary. Ids are stable: users hide these by id,
// so never renumber an existing entry. Append new terms at the end.
var defaultTerms = []models.Term{
	{
		ID:                "1",
		Word:              "PRD (제품 요구사항 문서)",
		Category:          models.CategoryPlanning,
		Definition:        "만들려는 제품이 무엇을, 누구를 위해, 왜 해야 하는지 정리한 문서입니다.",
		SimpleExplanation: "앱을 만들기 전에 '이 앱은 이런 일을 해야 해'라고 적어두는 설계 메모예요.",
		Analogy:           "집을 짓기 전에 건축가에게 건네는 '우리 가족이 원하는 집' 요청서와 같아요.",
		ExamplePrompt:     "할 일 관리 앱을 만들고 싶어. 대상 사용자, 핵심 기능 5개, 화면 목록을 포함한 PRD를 작성해줘.",
		Tags:              []string{"기획", "문서", "요구사항"},
	},
	{
		ID:                "2",
		Word:              "MVP (최소 기능 제품)",
		Category:          models.CategoryPlanning,
		Definition:        "핵심 가치를 검증할 수 있는 가장 작은 범위의 제품입니다.",
		SimpleExplanation: "꼭 필요한 기능만 넣어서 일단 빨리 만들어 보는 첫 번째 버전이에요.",
		Analogy:           "케이크 가게를 열기 전에 컵케이크 하나를 먼저 팔아보는 것과 같아요.",
		ExamplePrompt:     "내 아이디어의 MVP 범위를 정해줘. 꼭 필요한 기능 3개와 나중으로 미뤄도 되는 기능을 나눠줘.",
		Tags:              []string{"기획", "스타트업", "검증"},
	},
	{
		ID:                "3",
		Word:              "유저 플로우 (User Flow)",
		Category:          models.CategoryPlanning,
		Definition:        "사용자가 목표를 달성하기까지 거치는 화면과 행동의 순서입니다.",
		SimpleExplanation: "사용자가 앱에 들어와서 원하는 일을 끝낼 때까지 어떤 길로 가는지 그린 지도예요.",
		Analogy:           "놀이공원 입구부터 원하는 놀이기구까지 가는 길 안내도와 같아요.",
		ExamplePrompt:     "회원가입부터 첫 주문 완료까지의 유저 플로우를 단계별로 정리해줘.",
		Tags:              []string{"기획", "UX", "화면흐름"},
	},
	{
		ID:                "4",
		Word:              "API",
		Category:          models.CategoryCoding,
		Definition:        "프로그램끼리 기능이나 데이터를 주고받기 위해 정해둔 약속(인터페이스)입니다.",
		SimpleExplanation: "다른 프로그램에게 '이거 해줘'라고 부탁하는 정해진 방법이에요.",
		Analogy:           "식당의 웨이터예요. 손님(앱)이 주문하면 주방(서버)에 전달하고 음식을 가져다줘요.",
		ExamplePrompt:     "날씨 정보를 가져오는 공개 API를 추천하고, 호출하는 예제 코드를 초보자도 알 수 있게 설명해줘.",
		Tags:              []string{"개발", "연동", "서버"},
	},
	{
		ID:                "5",
		Word:              "프론트엔드 / 백엔드",
		Category:          models.CategoryCoding,
		Definition:        "프론트엔드는 사용자가 보는 화면, 백엔드는 보이지 않는 서버와 데이터 처리를 담당합니다.",
		SimpleExplanation: "앞에서 보이는 부분과 뒤에서 몰래 일하는 부분으로 나눈 거예요.",
		Analogy:           "식당의 홀(프론트엔드)과 주방(백엔드)이에요.",
		ExamplePrompt:     "간단한 메모 앱을 만들 때 프론트엔드와 백엔드가 각각 해야 할 일을 나눠서 알려줘.",
		Tags:              []string{"개발", "구조", "웹"},
	},
	{
		ID:                "6",
		Word:              "Git",
		Category:          models.CategoryCoding,
		Definition:        "코드의 변경 이력을 저장하고 여러 사람이 함께 작업할 수 있게 해주는 버전 관리 도구입니다.",
		SimpleExplanation: "코드를 저장할 때마다 사진을 찍어두어서 언제든 예전으로 돌아갈 수 있게 해줘요.",
		Analogy:           "게임의 세이브 포인트예요. 실수해도 저장한 곳부터 다시 시작할 수 있어요.",
		ExamplePrompt:     "Git을 처음 쓰는 사람을 위해 commit, push, pull을 순서대로 설명하고 명령어 예시를 보여줘.",
		Tags:              []string{"개발", "버전관리", "협업"},
	},
	{
		ID:                "7",
		Word:              "프롬프트 (Prompt)",
		Category:          models.CategoryPrompting,
		Definition:        "AI에게 원하는 결과를 얻기 위해 입력하는 지시문입니다.",
		SimpleExplanation: "AI에게 보내는 주문서예요. 자세히 쓸수록 원하는 결과가 나와요.",
		Analogy:           "카페에서 '따뜻한 라떼, 샷 추가, 우유는 오트밀크로'처럼 구체적으로 주문하는 것과 같아요.",
		ExamplePrompt:     "너는 10년 차 마케터야. 20대를 대상으로 한 카페 홍보 문구 5개를 친근한 말투로 써줘.",
		Tags:              []string{"AI", "지시문", "주문"},
	},
	{
		ID:                "8",
		Word:              "컨텍스트 (Context)",
		Category:          models.CategoryPrompting,
		Definition:        "AI가 답변을 만들 때 참고하는 배경 정보와 대화 기록입니다.",
		SimpleExplanation: "AI가 지금 상황을 이해하도록 미리 알려주는 배경 설명이에요.",
		Analogy:           "새로 온 동료에게 업무를 맡기기 전에 지금까지의 상황을 브리핑해주는 것과 같아요.",
		ExamplePrompt:     "아래는 우리 서비스 소개와 사용자 불만 목록이야. 이 내용을 참고해서 개선 우선순위를 정해줘.",
		Tags:              []string{"AI", "배경정보", "대화"},
	},
	{
		ID:                "9",
		Word:              "할루시네이션 (Hallucination)",
		Category:          models.CategoryPrompting,
		Definition:        "AI가 사실이 아닌 내용을 그럴듯하게 만들어 내는 현상입니다.",
		SimpleExplanation: "AI가 모르는 걸 아는 척하면서 지어내는 거예요.",
		Analogy:           "길을 모르는데 자신 있게 엉뚱한 방향을 알려주는 친구와 같아요.",
		ExamplePrompt:     "답변할 때 확실하지 않은 내용은 '확실하지 않음'이라고 표시하고, 근거가 있는 내용만 알려줘.",
		Tags:              []string{"AI", "오류", "검증"},
	},
	{
		ID:                "10",
		Word:              "배포 (Deploy)",
		Category:          models.CategoryInfra,
		Definition:        "만든 프로그램을 실제 사용자가 접속할 수 있는 서버에 올리는 과정입니다.",
		SimpleExplanation: "내 컴퓨터에서만 돌던 앱을 세상 사람들이 쓸 수 있게 공개하는 거예요.",
		Analogy:           "집에서 연습한 요리를 식당 메뉴에 정식으로 올리는 것과 같아요.",
		ExamplePrompt:     "Next.js로 만든 웹사이트를 Vercel에 배포하는 과정을 단계별로 알려줘.",
		Tags:              []string{"운영", "서버", "공개"},
	},
	{
		ID:                "11",
		Word:              "도메인 (Domain)",
		Category:          models.CategoryInfra,
		Definition:        "인터넷에서 서버의 주소(IP)를 사람이 기억하기 쉬운 이름으로 바꾼 것입니다.",
		SimpleExplanation: "복잡한 숫자 주소 대신 쓰는 웹사이트 이름이에요.",
		Analogy:           "전화번호 대신 저장해 둔 '엄마'라는 연락처 이름과 같아요.",
		ExamplePrompt:     "내가 구매한 도메인을 배포한 웹사이트에 연결하는 방법을 알려줘.",
		Tags:              []string{"운영", "주소", "DNS"},
	},
	{
		ID:                "12",
		Word:              "환경 변수 (Environment Variable)",
		Category:          models.CategoryInfra,
		Definition:        "코드 밖에서 설정값이나 비밀 키를 전달하기 위해 쓰는 변수입니다.",
		SimpleExplanation: "API 키 같은 비밀 정보를 코드에 직접 쓰지 않고 따로 보관하는 방법이에요.",
		Analogy:           "집 열쇠를 현관문에 붙여두지 않고 주머니에 따로 넣어 다니는 것과 같아요.",
		ExamplePrompt:     "내 코드에 적힌 API 키를 .env 파일의 환경 변수로 옮기는 방법을 알려줘.",
		Tags:              []string{"운영", "보안", "설정"},
	},
	{
		ID:                "13",
		Word:              "UI / UX",
		Category:          models.CategoryDesign,
		Definition:        "UI는 사용자가 보는 화면 요소, UX는 사용하면서 느끼는 전체 경험입니다.",
		SimpleExplanation: "UI는 겉모습, UX는 써봤을 때 편한지 불편한지예요.",
		Analogy:           "UI는 의자의 디자인, UX는 그 의자에 앉았을 때의 편안함이에요.",
		ExamplePrompt:     "내 앱의 회원가입 화면에서 UX를 개선할 수 있는 방법 5가지를 알려줘.",
		Tags:              []string{"디자인", "화면", "경험"},
	},
	{
		ID:                "14",
		Word:              "와이어프레임 (Wireframe)",
		Category:          models.CategoryDesign,
		Definition:        "색이나 이미지 없이 화면의 구조와 배치만 간단히 그린 설계도입니다.",
		SimpleExplanation: "화면에 무엇이 어디에 들어갈지 연필로 대충 그려본 스케치예요.",
		Analogy:           "가구를 사기 전에 방 도면에 가구 위치를 네모로 그려보는 것과 같아요.",
		ExamplePrompt:     "쇼핑몰 상품 상세 페이지의 와이어프레임 구성을 섹션별로 텍스트로 그려줘.",
		Tags:              []string{"디자인", "설계", "스케치"},
	},
	{
		ID:                "15",
		Word:              "반응형 디자인 (Responsive Design)",
		Category:          models.CategoryDesign,
		Definition:        "화면 크기에 따라 레이아웃이 자동으로 바뀌도록 만드는 디자인 방식입니다.",
		SimpleExplanation: "휴대폰, 태블릿, 컴퓨터 어디서 봐도 보기 좋게 모양이 바뀌어요.",
		Analogy:           "물이 담기는 그릇 모양에 맞춰 모양이 바뀌는 것과 같아요.",
		ExamplePrompt:     "이 랜딩 페이지를 모바일에서도 잘 보이도록 반응형으로 바꿔줘. Tailwind CSS를 사용해줘.",
		Tags:              []string{"디자인", "모바일", "CSS"},
	},
	{
		ID:                "16",
		Word:              "데이터베이스 (Database)",
		Category:          models.CategoryDataAnalysis,
		Definition:        "데이터를 체계적으로 저장하고 꺼내 쓸 수 있게 관리하는 시스템입니다.",
		SimpleExplanation: "앱의 정보를 정리해서 보관하는 거대한 전자 서랍장이에요.",
		Analogy:           "도서관의 책장과 분류 체계예요. 원하는 책을 빨리 찾을 수 있어요.",
		ExamplePrompt:     "독서 기록 앱에 필요한 데이터베이스 테이블을 설계해주고, 각 칸이 무슨 뜻인지 설명해줘.",
		Tags:              []string{"데이터", "저장", "DB"},
	},
	{
		ID:                "17",
		Word:              "SQL",
		Category:          models.CategoryDataAnalysis,
		Definition:        "데이터베이스에서 데이터를 조회하고 수정하기 위한 언어입니다.",
		SimpleExplanation: "데이터 서랍장에게 '이 조건에 맞는 것만 꺼내줘'라고 말하는 언어예요.",
		Analogy:           "도서관 사서에게 '2020년 이후 출간된 소설만 찾아주세요'라고 요청하는 것과 같아요.",
		ExamplePrompt:     "지난달 가장 많이 팔린 상품 5개를 구하는 SQL을 작성하고 한 줄씩 설명해줘.",
		Tags:              []string{"데이터", "조회", "쿼리"},
	},
	{
		ID:                "18",
		Word:              "대시보드 (Dashboard)",
		Category:          models.CategoryDataAnalysis,
		Definition:        "중요한 지표를 한 화면에 모아 시각적으로 보여주는 화면입니다.",
		SimpleExplanation: "숫자들을 그래프로 한눈에 볼 수 있게 모아둔 상황판이에요.",
		Analogy:           "자동차 계기판이에요. 속도, 기름, 온도를 한 번에 확인할 수 있어요.",
		ExamplePrompt:     "온라인 쇼핑몰 운영자가 매일 봐야 할 대시보드 지표 7개와 그래프 종류를 추천해줘.",
		Tags:              []string{"데이터", "시각화", "지표"},
	},
}

// DefaultTerms returns a copy of the built-in glossary in declaration order.
func DefaultTerms() []models.Term {
	out := make([]models.Term, len(defaultTerms))
	for i, t := range defaultTerms {
		out[i] = t.Clone()
	}
	return out
}
