// Command seed clears and reloads the visa catalog: categories,
// requirements, industry mappings and document templates. Run after
// applying scripts/schema.sql.
package main

import (
	"context"
	"log"
	"time"

	"go-visa-diagnosis-backend/config"
	"go-visa-diagnosis-backend/internal/domain"
	"go-visa-diagnosis-backend/internal/repository/postgres"
	"go-visa-diagnosis-backend/pkg/database"
)

type requirementSeed struct {
	Type          string
	Condition     string
	Mandatory     bool
	Alternative   string
	AlternativeOK bool
}

type mappingSeed struct {
	Industry    string
	JobCategory string
	Visa        string
	Score       int
	Notes       string
}

type documentSeed struct {
	Name        string
	Description string
	Mandatory   bool
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	log.Println("Clearing existing catalog data...")
	for _, table := range []string{"document_templates", "industry_visa_mapping", "visa_requirements", "visa_categories"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("Failed to clear %s: %v", table, err)
		}
	}

	admin := postgres.NewCatalogAdminRepository(pool)

	log.Println("Creating visa categories...")
	categoryIDs := make(map[string]int64)
	for _, c := range seedCategories() {
		cat := c
		now := time.Now()
		cat.IsActive = true
		cat.CreatedAt = now
		cat.UpdatedAt = now
		if err := admin.CreateCategory(ctx, &cat); err != nil {
			log.Fatalf("Failed to create category %s: %v", cat.Code, err)
		}
		categoryIDs[cat.Code] = cat.ID
	}

	log.Println("Creating requirements...")
	for code, reqs := range seedRequirements() {
		for order, r := range reqs {
			req := domain.Requirement{
				VisaCategoryID:       categoryIDs[code],
				Type:                 r.Type,
				Condition:            r.Condition,
				IsMandatory:          r.Mandatory,
				AlternativeCondition: r.Alternative,
				AlternativeOK:        r.AlternativeOK,
				DisplayOrder:         order + 1,
			}
			if err := admin.CreateRequirement(ctx, &req); err != nil {
				log.Fatalf("Failed to create requirement for %s: %v", code, err)
			}
		}
	}

	log.Println("Creating industry mappings...")
	for _, m := range seedMappings() {
		mapping := domain.IndustryMapping{
			Industry:       m.Industry,
			JobCategory:    m.JobCategory,
			VisaCategoryID: categoryIDs[m.Visa],
			MatchScore:     m.Score,
			Notes:          m.Notes,
		}
		if err := admin.CreateMapping(ctx, &mapping); err != nil {
			log.Fatalf("Failed to create mapping %s/%s: %v", m.Industry, m.JobCategory, err)
		}
	}

	log.Println("Creating document templates...")
	for code, docs := range seedDocuments() {
		for order, d := range docs {
			doc := domain.DocumentRequirement{
				VisaCategoryID: categoryIDs[code],
				Name:           d.Name,
				Description:    d.Description,
				IsMandatory:    d.Mandatory,
				DisplayOrder:   order + 1,
			}
			if err := admin.CreateDocument(ctx, &doc); err != nil {
				log.Fatalf("Failed to create document for %s: %v", code, err)
			}
		}
	}

	log.Println("Catalog seeding completed.")
}

func seedCategories() []domain.VisaCategory {
	return []domain.VisaCategory{
		{
			Code:         "engineer_specialist",
			NameJA:       "技術・人文知識・国際業務",
			NameEN:       "Engineer/Specialist in Humanities/International Services",
			CategoryType: domain.CategoryTypeWork,
			Description:  "理学、工学、人文科学、社会科学の分野に属する技術・知識を要する業務、外国の文化に基盤を有する思考・感受性を必要とする業務に従事する活動",
			Priority:     1,
		},
		{
			Code:         "specified_skilled_worker_1",
			NameJA:       "特定技能1号",
			NameEN:       "Specified Skilled Worker (i)",
			CategoryType: domain.CategoryTypeSpecified,
			Description:  "特定産業分野（14分野）において、相当程度の知識または経験を必要とする技能を要する業務に従事する活動",
			Priority:     2,
		},
		{
			Code:         "specified_skilled_worker_2",
			NameJA:       "特定技能2号",
			NameEN:       "Specified Skilled Worker (ii)",
			CategoryType: domain.CategoryTypeSpecified,
			Description:  "特定産業分野において、熟練した技能を要する業務に従事する活動",
			Priority:     3,
		},
		{
			Code:         "highly_skilled_professional",
			NameJA:       "高度専門職",
			NameEN:       "Highly Skilled Professional",
			CategoryType: domain.CategoryTypeWork,
			Description:  "ポイント制により、高度な専門的知識や技術を有する外国人の活動",
			Priority:     4,
		},
		{
			Code:         "skilled_labor",
			NameJA:       "技能",
			NameEN:       "Skilled Labor",
			CategoryType: domain.CategoryTypeWork,
			Description:  "産業上の特殊な分野に属する熟練した技能を要する業務に従事する活動",
			Priority:     5,
		},
		{
			Code:         "intra_company_transferee",
			NameJA:       "企業内転勤",
			NameEN:       "Intra-company Transferee",
			CategoryType: domain.CategoryTypeWork,
			Description:  "外国の事業所からの期間を定めた転勤により、日本の事業所において技術・知識を要する業務または国際業務に従事する活動",
			Priority:     6,
		},
	}
}

func seedRequirements() map[string][]requirementSeed {
	return map[string][]requirementSeed{
		"engineer_specialist": {
			{
				Type:          domain.RequirementEducation,
				Condition:     "大学卒業以上、または関連分野の専攻（理工系、人文科学、社会科学など）",
				Mandatory:     true,
				Alternative:   "実務経験10年以上で代替可能（専門学校卒の場合は3年以上）",
				AlternativeOK: true,
			},
			{
				Type:      domain.RequirementSalary,
				Condition: "日本人が従事する場合に受ける報酬と同等額以上",
				Mandatory: true,
			},
			{
				Type:      domain.RequirementOther,
				Condition: "単純労働でないこと（専門的・技術的な業務内容）",
				Mandatory: true,
			},
		},
		"specified_skilled_worker_1": {
			{
				Type:          domain.RequirementQualification,
				Condition:     "特定産業分野の技能評価試験に合格",
				Mandatory:     true,
				Alternative:   "技能実習2号を良好に修了",
				AlternativeOK: true,
			},
			{
				Type:      domain.RequirementQualification,
				Condition: "日本語能力試験N4以上または国際交流基金日本語基礎テストに合格",
				Mandatory: true,
			},
			{
				Type:      domain.RequirementOther,
				Condition: "特定産業分野での就労（介護、ビルクリーニング、素形材産業、産業機械製造業、電気・電子情報関連産業、建設、造船・舶用工業、自動車整備、航空、宿泊、農業、漁業、飲食料品製造業、外食業）",
				Mandatory: true,
			},
		},
		"specified_skilled_worker_2": {
			{
				Type:      domain.RequirementQualification,
				Condition: "特定産業分野の技能評価試験（2号レベル）に合格",
				Mandatory: true,
			},
			{
				Type:      domain.RequirementOther,
				Condition: "特定産業分野での就労（建設、造船・舶用工業）※2024年時点",
				Mandatory: true,
			},
		},
		"highly_skilled_professional": {
			{
				Type:      domain.RequirementOther,
				Condition: "ポイント計算で70点以上（学歴、職歴、年収、年齢等で算出）",
				Mandatory: true,
			},
			{
				Type:      domain.RequirementEducation,
				Condition: "修士号以上が有利（ポイント加算）",
				Mandatory: false,
			},
			{
				Type:      domain.RequirementSalary,
				Condition: "年収300万円以上（ポイント加算の基準）",
				Mandatory: true,
			},
		},
		"skilled_labor": {
			{
				Type:      domain.RequirementExperience,
				Condition: "該当分野での実務経験10年以上",
				Mandatory: true,
			},
			{
				Type:      domain.RequirementOther,
				Condition: "特殊な技能（調理師、建築技術者、外国特有製品製造・修理など）",
				Mandatory: true,
			},
		},
		"intra_company_transferee": {
			{
				Type:      domain.RequirementExperience,
				Condition: "転勤直前に外国の事業所で1年以上継続して勤務",
				Mandatory: true,
			},
			{
				Type:      domain.RequirementOther,
				Condition: "技術・知識を要する業務または国際業務に従事",
				Mandatory: true,
			},
		},
	}
}

func seedMappings() []mappingSeed {
	return []mappingSeed{
		{"IT・ソフトウェア", "システムエンジニア", "engineer_specialist", 95, ""},
		{"IT・ソフトウェア", "プログラマー", "engineer_specialist", 90, ""},
		{"IT・ソフトウェア", "Webデザイナー", "engineer_specialist", 80, ""},
		{"製造業", "製造技術者", "engineer_specialist", 85, ""},
		{"製造業", "製造ライン作業", "specified_skilled_worker_1", 90, "特定技能「製造3分野」"},
		{"製造業", "品質管理", "engineer_specialist", 80, ""},
		{"商社・貿易", "海外営業", "engineer_specialist", 90, "国際業務として該当"},
		{"商社・貿易", "貿易事務", "engineer_specialist", 85, ""},
		{"飲食業", "調理師", "specified_skilled_worker_1", 85, "特定技能「外食業」"},
		{"飲食業", "外国料理専門調理師", "skilled_labor", 90, "10年以上の経験が必要"},
		{"建設業", "建築技術者", "engineer_specialist", 85, ""},
		{"建設業", "建設作業員", "specified_skilled_worker_1", 90, "特定技能「建設」"},
		{"介護", "介護職員", "specified_skilled_worker_1", 95, "特定技能「介護」"},
		{"宿泊業", "フロント業務", "specified_skilled_worker_1", 85, "特定技能「宿泊」"},
		{"農業", "農業作業員", "specified_skilled_worker_1", 90, "特定技能「農業」"},
		{"サービス業", "通訳", "engineer_specialist", 95, "国際業務として該当"},
		{"サービス業", "翻訳", "engineer_specialist", 90, "国際業務として該当"},
	}
}

func seedDocuments() map[string][]documentSeed {
	return map[string][]documentSeed{
		"engineer_specialist": {
			{"在留資格認定証明書交付申請書", "所定の様式に記入", true},
			{"写真（4cm×3cm）", "申請前3か月以内に撮影されたもの", true},
			{"返信用封筒", "404円分の切手を貼付", true},
			{"卒業証明書", "最終学歴の卒業証明書（原本）", true},
			{"成績証明書", "大学等の成績証明書", true},
			{"雇用契約書または採用内定通知書", "業務内容、報酬額が明記されたもの", true},
			{"会社の登記事項証明書", "発行後3か月以内のもの", true},
			{"会社案内パンフレット", "事業内容が分かるもの", false},
			{"直近年度の決算文書", "貸借対照表、損益計算書等", true},
		},
		"specified_skilled_worker_1": {
			{"在留資格認定証明書交付申請書", "特定技能用の様式", true},
			{"写真（4cm×3cm）", "申請前3か月以内に撮影されたもの", true},
			{"特定技能評価試験の合格証明書", "または技能実習2号修了証明書", true},
			{"日本語能力を証する書類", "N4以上の合格証明書", true},
			{"特定技能雇用契約書", "所定の様式に記入", true},
			{"支援計画書", "登録支援機関が作成する場合もあり", true},
			{"会社の登記事項証明書", "発行後3か月以内のもの", true},
		},
	}
}
